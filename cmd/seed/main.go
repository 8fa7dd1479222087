package main

import (
	"context"
	stdlog "log"
	"math/rand"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"shipdocs/internal/config"
	"shipdocs/internal/database"
	"shipdocs/internal/database/migration"
	"shipdocs/internal/docnumber"
	"shipdocs/internal/logger"
	"shipdocs/internal/model"
	"shipdocs/internal/repository/mysql"
)

type sample struct {
	documentType   string
	description    string
	customerName   string
	shipmentStatus string
	summary        string
	imagePath      string
}

var samples = []sample{
	{
		documentType:   model.TypeInvoice,
		description:    "Invoice for Q3 electronics shipment.",
		customerName:   "Acme Corp",
		shipmentStatus: model.StatusPending,
		summary:        "Invoice #2345 for shipment 1203, net-30 terms, amount $12,540.",
		imagePath:      "https://picsum.photos/seed/invoice1/920/600",
	},
	{
		documentType:   model.TypeBillOfLading,
		description:    "BOL for ocean freight from Shenzhen.",
		customerName:   "Global Trade LLC",
		shipmentStatus: model.StatusInTransit,
		summary:        "BOL #7731, vessel: Oceanic Star, ETA 2025-01-15.",
		imagePath:      "https://picsum.photos/seed/bol1/920/600",
	},
	{
		documentType:   model.TypeCustomerPaperwork,
		description:    "Customs declaration paperwork for EU import.",
		customerName:   "EuroGoods Ltd",
		shipmentStatus: model.StatusPending,
		summary:        "CN23 form filled, tariff code 8517, awaiting clearance.",
		imagePath:      "https://picsum.photos/seed/customers1/920/600",
	},
	{
		documentType:   model.TypePackingList,
		description:    "Packing list for 200 units of routers.",
		customerName:   "Acme Corp",
		shipmentStatus: model.StatusDelivered,
		summary:        "PL #5512, cartons: 20, weight: 320kg, delivered 2025-11-01.",
		imagePath:      "https://picsum.photos/seed/packing1/920/600",
	},
	{
		documentType:   model.TypeOther,
		description:    "Supplier certificate of origin.",
		customerName:   "Shenzhen Tech Co",
		shipmentStatus: model.StatusInTransit,
		summary:        "COO confirms origin CN, HS validation done.",
		imagePath:      "https://picsum.photos/seed/other1/920/600",
	},
	{
		documentType:   model.TypeInvoice,
		description:    "Invoice for replacement parts.",
		customerName:   "RepairWorks Inc",
		shipmentStatus: model.StatusDelivered,
		summary:        "Invoice #8821 for replacement parts post-shipment.",
		imagePath:      "https://picsum.photos/seed/invoice2/920/600",
	},
	{
		documentType:   model.TypeBillOfLading,
		description:    "BOL for inland trucking segment.",
		customerName:   "Global Trade LLC",
		shipmentStatus: model.StatusPending,
		summary:        "BOL #8890 for trucking from port to DC.",
		imagePath:      "https://picsum.photos/seed/bol2/920/600",
	},
	{
		documentType:   model.TypePackingList,
		description:    "Packing list for spare components.",
		customerName:   "EuroGoods Ltd",
		shipmentStatus: model.StatusDelivered,
		summary:        "PL #9901, delivered to customer warehouse.",
		imagePath:      "https://picsum.photos/seed/packing2/920/600",
	},
}

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Log)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer log.Sync()

	ctx := context.Background()

	db, err := database.NewMySQL(cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := migration.EnsureSchema(ctx, db, cfg.Database.Name, log); err != nil {
		log.Fatal("failed to ensure database schema", zap.Error(err))
	}

	repo := mysql.NewDocumentMySQL(db)
	numbers := docnumber.New()
	now := time.Now()

	for i, s := range samples {
		// Delivered documents get today as their delivery date, the rest
		// land 7 to 30 days out.
		estimated := now
		if s.shipmentStatus != model.StatusDelivered {
			estimated = now.AddDate(0, 0, 7+rand.Intn(23))
		}

		doc := &model.Document{
			ImagePath:         s.imagePath,
			DocumentNumber:    numbers.Sequential(s.documentType, i+1),
			UploadDate:        now,
			DocumentType:      s.documentType,
			Description:       ptr(s.description),
			CustomerName:      ptr(s.customerName),
			ShipmentStatus:    s.shipmentStatus,
			DocumentSummary:   ptr(s.summary),
			EstimatedDelivery: &estimated,
		}

		id, err := repo.Insert(ctx, doc)
		if err != nil {
			log.Fatal("failed to insert sample document",
				zap.String("document_number", doc.DocumentNumber), zap.Error(err))
		}
		log.Info("sample document inserted",
			zap.Int64("id", id), zap.String("document_number", doc.DocumentNumber))
	}

	log.Info("seed data inserted", zap.Int("count", len(samples)))
}

func ptr(s string) *string { return &s }
