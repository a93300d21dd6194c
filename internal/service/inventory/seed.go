package inventory

import (
	"context"

	"go.uber.org/zap"

	"github.com/siennesavenue/inventory/internal/domain/models"
)

type seedProduct struct {
	sku        string
	name       string
	category   string
	collection string
	imageURL   string
	stock      int
	warning    int
	critical   int
	price      int64
	cogs       int64
}

var seedCatalog = []seedProduct{
	// Sienne's Avenue collection
	{"SA-CASSIE-SHIRT", "Cassie Fitted Shirt", "Tops", "Sienne's Avenue", "cassie_shirt.JPG", 22, 10, 5, 189000, 94685},
	{"SA-MADDY-HALTER", "Maddy Halter Vest Top", "Tops", "Sienne's Avenue", "maddy_shirt.JPG", 8, 10, 5, 179000, 104685},
	{"SA-IVY-SHORTS", "Ivy Lace Shorts", "Bottoms", "Sienne's Avenue", "cassie_ivy_short.jpg", 26, 10, 5, 149000, 87785},
	{"SA-CANDACE-SKORT", "Candace Mini Skort", "Bottoms", "Sienne's Avenue", "Candace_Mini_Skort_.jpg", 10, 10, 5, 169000, 76464},
	{"SA-DANIELLE-BOW", "Danielle Bow Halter Top", "Tops", "Sienne's Avenue", "danielle_top.JPG", 37, 10, 5, 179000, 66464},
	{"SA-ELAINE-DENIM", "Elaine Denim Shorts", "Bottoms", "Sienne's Avenue", "ivy_denim.jpg", 19, 10, 5, 159000, 87785},
	{"SA-RUBY-TOP", "Ruby Multiways Top", "Tops", "Sienne's Avenue", "ruby_lily.JPG", 2, 10, 5, 169000, 66464},
	{"SA-LILY-PANTS", "Lily Lounge Boyfriend Pants", "Bottoms", "Sienne's Avenue", "lily_pants.JPG", 8, 10, 5, 189000, 74335},

	// Hers collection
	{"HERS-JENNIE-NC", "Jennie Fitted Tee", "Tops", "Hers", "jennie_tee.JPG", 16, 10, 5, 169000, 89943},
	{"HERS-JENNIE-C", "Jennie Fitted Tee (Custom)", "Tops", "Hers", "jennie_tee.JPG", 0, 10, 5, 199000, 89943},
	{"HERS-KENDALL-TANK", "Kendall Lace Tank", "Tops", "Hers", "kendall_lace_tank.JPG", 0, 10, 5, 149000, 90315},
	{"HERS-SYDNEY-TANK", "Sydney Pointelle Tank", "Tops", "Hers", "sydney_tank.JPG", 10, 10, 5, 149000, 76315},
	{"HERS-CHARLOTTE-CARD", "Charlotte Pointelle Cardigan", "Outerwear", "Hers", "charlotte_cardigan.JPG", 2, 10, 5, 189000, 123183},
	{"HERS-BELLA-TOP", "Bella Multiways Top", "Tops", "Hers", "", 33, 10, 5, 169000, 66464},
	{"HERS-WILLOW-LS", "Willow Pointelle Longsleeve Top", "Tops", "Hers", "", 2, 10, 5, 179000, 93183},
	{"HERS-MILLANE-WRAP", "Millane Pointelle Wrap Top", "Tops", "Hers", "", 14, 10, 5, 179000, 93183},
	{"HERS-ELLA-SKORT", "Ella Pointelle Mini Skort", "Bottoms", "Hers", "", 49, 10, 5, 159000, 76315},

	// Château de Sienne collection
	{"CDS-CHLOE-SATIN", "Chloe Satin Top", "Tops", "Château de Sienne", "", 9, 10, 5, 179000, 63108},
	{"CDS-CAMILLE-PANTS", "Camille Satin Pants", "Bottoms", "Château de Sienne", "", 17, 10, 5, 249000, 78098},
	{"CDS-EMILY-SHORTS", "Emily Pointelle Lounge Shorts", "Bottoms", "Château de Sienne", "", 22, 10, 5, 149000, 70536},
	{"CDS-MIA-DRESS", "Mia Gingham Mini Dress", "Dresses", "Château de Sienne", "", 6, 10, 5, 269000, 110338},
}

// SeedCatalog populates the demo catalog on first boot. A store that already
// holds products is left alone.
func (s *Service) SeedCatalog(ctx context.Context) error {
	var seeded int
	err := s.store.Update(ctx, func(state *models.State) error {
		if len(state.Products) > 0 {
			return nil
		}

		now := s.now().UTC()
		for _, sp := range seedCatalog {
			state.Counters.Products++
			state.Products = append(state.Products, models.Product{
				ID:                state.Counters.Products,
				SKU:               sp.sku,
				Name:              sp.name,
				Category:          sp.category,
				Collection:        sp.collection,
				ImageURL:          sp.imageURL,
				CurrentStock:      sp.stock,
				WarningThreshold:  sp.warning,
				CriticalThreshold: sp.critical,
				Price:             sp.price,
				COGS:              sp.cogs,
				CreatedAt:         now,
				UpdatedAt:         now,
			})
		}
		seeded = len(seedCatalog)
		return nil
	})
	if err != nil {
		return err
	}

	if seeded > 0 {
		s.logger.Info("catalog seeded", zap.Int("products", seeded))
	}
	return nil
}
