//go:generate goverter gen github.com/DRSN-tech/vendor-onboarding/internal/repository/redis/converter

package converter

import (
	"time"

	"github.com/DRSN-tech/vendor-onboarding/internal/usecase"
)

// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type VendorSummaryConverter interface {
	ToRedisModel(entity *usecase.VendorSummary) *VendorSummaryRedisModel
	ToUseCase(model *VendorSummaryRedisModel) *usecase.VendorSummary
	ToArrRedisModel(entities []usecase.VendorSummary) []VendorSummaryRedisModel
	ToArrUseCase(models []VendorSummaryRedisModel) []usecase.VendorSummary
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertTime(t time.Time) time.Time {
	return t
}
