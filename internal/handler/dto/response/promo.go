package response

import (
	"wedding-console/internal/domain/catalog"

	"github.com/jinzhu/copier"
)

func FromPromo(p *catalog.Promo) PromoResponse {
	var res PromoResponse
	_ = copier.Copy(&res, p)
	return res
}
