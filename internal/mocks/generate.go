package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name PageFetcher --dir ../usecase --output usecase --outpkg usecasemock --filename page_fetcher_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Extractor --dir ../usecase --output usecase --outpkg usecasemock --filename extractor_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name ExtractionObserver --dir ../usecase --output usecase --outpkg usecasemock --filename extraction_observer_mock.go
