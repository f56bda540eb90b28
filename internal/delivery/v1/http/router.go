package http

import (
	_ "github.com/DRSN-tech/vendor-onboarding/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/vendor-onboarding/internal/usecase"
	"github.com/DRSN-tech/vendor-onboarding/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(vendorUC usecase.VendorUC, ingestUC usecase.IngestUC, reportUC usecase.ReportUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		vendorHandler := NewVendorHandler(vendorUC, r.logger)
		uploadHandler := NewUploadHandler(ingestUC, r.logger)
		productHandler := NewProductHandler(ingestUC, r.logger)
		reportHandler := NewReportHandler(reportUC, r.logger)

		registerVendorRoutes(v1, vendorHandler, uploadHandler)
		registerUploadRoutes(v1, uploadHandler)
		registerProductRoutes(v1, productHandler)
		registerReportRoutes(v1, reportHandler)
	})
}

func registerVendorRoutes(router chi.Router, vendorHandler *VendorHandler, uploadHandler *UploadHandler) {
	router.Route("/vendors", func(vn chi.Router) {
		vn.Post("/", vendorHandler.createVendor)
		vn.Get("/", vendorHandler.listVendors)
		vn.Get("/{vendorID}", vendorHandler.getVendor)
		vn.Patch("/{vendorID}/status", vendorHandler.setVendorStatus)
		vn.Delete("/{vendorID}", vendorHandler.deleteVendor)
		vn.Post("/{vendorID}/uploads", uploadHandler.beginUpload)
	})
}

func registerUploadRoutes(router chi.Router, uploadHandler *UploadHandler) {
	router.Route("/uploads", func(up chi.Router) {
		up.Get("/{uploadID}", uploadHandler.getUpload)
		up.Post("/{uploadID}/complete", uploadHandler.completeUpload)
		up.Post("/{uploadID}/errors", uploadHandler.recordValidationError)
		up.Get("/{uploadID}/errors", uploadHandler.listUploadErrors)
	})
}

func registerProductRoutes(router chi.Router, productHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Post("/", productHandler.addProduct)
		pr.Get("/{productID}", productHandler.getProduct)
		pr.Patch("/{productID}/stock", productHandler.updateStock)
		pr.Patch("/{productID}/status", productHandler.setProductStatus)
	})
}

func registerReportRoutes(router chi.Router, reportHandler *ReportHandler) {
	router.Route("/reports", func(rp chi.Router) {
		rp.Get("/vendor-summary", reportHandler.vendorSummaries)
		rp.Get("/vendor-summary/{vendorID}", reportHandler.vendorSummary)
		rp.Get("/recent-uploads", reportHandler.recentUploads)
		rp.Get("/catalog", reportHandler.catalog)
	})

	router.Get("/categories", reportHandler.categories)
}
