package seed

import (
	"context"
	"log/slog"
	"math"
	"time"

	billingdomain "github.com/erp-civi/erp-backend/internal/billing/domain"
	boqdomain "github.com/erp-civi/erp-backend/internal/boq/domain"
	"github.com/erp-civi/erp-backend/internal/clients"
	"github.com/erp-civi/erp-backend/internal/dailyreports"
	"github.com/erp-civi/erp-backend/internal/equipment"
	"github.com/erp-civi/erp-backend/internal/inventory"
	invoicedomain "github.com/erp-civi/erp-backend/internal/invoices/domain"
	projectdomain "github.com/erp-civi/erp-backend/internal/projects/domain"
	"github.com/erp-civi/erp-backend/internal/storage"
	"github.com/erp-civi/erp-backend/internal/vendors"
)

// Initialize loads the demo dataset into an empty store. It is a no-op when
// the projects collection already has records, so restarting the server never
// clobbers user data.
func Initialize(ctx context.Context, store *storage.Store) {
	var existing []projectdomain.Project
	if store.Get(ctx, "projects", &existing) && len(existing) > 0 {
		slog.Debug("seed skipped, data already present", "projects", len(existing))
		return
	}

	seedClients(ctx, store)
	seedProjects(ctx, store)
	seedBOQItems(ctx, store)
	seedRunningBills(ctx, store)
	seedInvoices(ctx, store)
	seedVendors(ctx, store)
	seedMaterials(ctx, store)
	seedEquipment(ctx, store)
	seedDailyReports(ctx, store)

	slog.Info("seed data initialized")
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func seedClients(ctx context.Context, store *storage.Store) {
	store.Set(ctx, "clients", []clients.Client{
		{
			ID: "client_1", Name: "Mumbai Metropolitan Development",
			Email: "contact@mmd.com", Phone: "+91 22-4040-0000",
			Address: "123 Business Plaza, Mumbai", City: "Mumbai", State: "Maharashtra",
			ZipCode: "400001", GSTIN: "27AAPPP7890A1Z5", ContactPerson: "Rajesh Kumar",
			CreatedAt: day("2024-01-15"),
		},
		{
			ID: "client_2", Name: "Bangalore Infrastructure Ltd",
			Email: "projects@bil.co.in", Phone: "+91 80-3040-5000",
			Address: "Tech Tower, Bangalore", City: "Bangalore", State: "Karnataka",
			ZipCode: "560042", GSTIN: "29AAPPP1234B2Z3", ContactPerson: "Priya Sharma",
			CreatedAt: day("2024-02-01"),
		},
		{
			ID: "client_3", Name: "Delhi Metro Rail Corporation",
			Email: "tender@dmrc.co.in", Phone: "+91 11-4040-0000",
			Address: "DMRC Headquarters, Delhi", City: "Delhi", State: "Delhi",
			ZipCode: "110001", GSTIN: "07AAPPP5678C2Z1", ContactPerson: "Amit Verma",
			CreatedAt: day("2024-02-10"),
		},
	})
}

func seedProjects(ctx context.Context, store *storage.Store) {
	now := time.Now().UTC()
	store.Set(ctx, "projects", []projectdomain.Project{
		{
			ID: "proj_1", Name: "Luxury Apartment Complex - Phase 1", ClientID: "client_1",
			Description: "Construction of 250-unit luxury residential complex",
			StartDate:   "2024-01-15", EndDate: "2025-06-30", Budget: 5000000,
			Status: projectdomain.StatusOngoing, Location: "Powai, Mumbai",
			CreatedAt: day("2024-01-15"), UpdatedAt: now,
		},
		{
			ID: "proj_2", Name: "Commercial Office Building", ClientID: "client_2",
			Description: "15-story commercial complex with retail space",
			StartDate:   "2024-03-01", EndDate: "2025-12-31", Budget: 7500000,
			Status: projectdomain.StatusOngoing, Location: "Whitefield, Bangalore",
			CreatedAt: day("2024-03-01"), UpdatedAt: now,
		},
		{
			ID: "proj_3", Name: "Metro Station Extension", ClientID: "client_3",
			Description: "Civil construction for new metro station",
			StartDate:   "2024-02-01", EndDate: "2025-03-31", Budget: 12000000,
			Status: projectdomain.StatusOngoing, Location: "East Delhi",
			CreatedAt: day("2024-02-01"), UpdatedAt: now,
		},
		{
			ID: "proj_4", Name: "Educational Institution Campus", ClientID: "client_1",
			Description: "Campus infrastructure development - completed",
			StartDate:   "2023-01-01", EndDate: "2024-11-30", Budget: 3500000,
			Status: projectdomain.StatusCompleted, Location: "Thane, Mumbai",
			CreatedAt: day("2023-01-01"), UpdatedAt: now,
		},
	})
}

func seedBOQItems(ctx context.Context, store *storage.Store) {
	now := time.Now().UTC()
	store.Set(ctx, "boq_items", []boqdomain.Item{
		{
			ID: "boq_1", ProjectID: "proj_1", ItemName: "Excavation & Foundation",
			Description: "Earth excavation and RCC foundation",
			Quantity:    5000, Unit: "cum", Rate: 500, TotalAmount: 2500000, CreatedAt: now,
		},
		{
			ID: "boq_2", ProjectID: "proj_1", ItemName: "Structural Steel Work",
			Description: "Structural steel columns and beams",
			Quantity:    800, Unit: "ton", Rate: 50000, TotalAmount: 40000000, CreatedAt: now,
		},
		{
			ID: "boq_3", ProjectID: "proj_2", ItemName: "Pile Foundation",
			Description: "Deep pile foundation work",
			Quantity:    250, Unit: "no", Rate: 100000, TotalAmount: 25000000, CreatedAt: now,
		},
		{
			ID: "boq_4", ProjectID: "proj_2", ItemName: "RCC Columns",
			Description: "RCC column casting and finishing",
			Quantity:    2000, Unit: "cum", Rate: 8000, TotalAmount: 16000000, CreatedAt: now,
		},
		{
			ID: "boq_5", ProjectID: "proj_3", ItemName: "Tunnel Excavation",
			Description: "Underground tunnel boring",
			Quantity:    3000, Unit: "cum", Rate: 3000, TotalAmount: 9000000, CreatedAt: now,
		},
		{
			ID: "boq_6", ProjectID: "proj_3", ItemName: "Tunnel Lining",
			Description: "Concrete lining for tunnel",
			Quantity:    5000, Unit: "sqm", Rate: 500, TotalAmount: 2500000, CreatedAt: now,
		},
	})
}

func seedRunningBills(ctx context.Context, store *storage.Store) {
	now := time.Now().UTC()
	store.Set(ctx, "running_bills", []billingdomain.RunningBill{
		{
			ID: "bill_1", ProjectID: "proj_1", BillNumber: "RB/2024/001", BillDate: "2024-02-15",
			BOQItems: []billingdomain.Line{{ItemID: "boq_1", Quantity: 1000, Rate: 500, Total: 500000}},
			Subtotal: 500000, RetentionPercentage: 10, RetentionAmount: 50000, BillAmount: 450000,
			Status: billingdomain.StatusApproved, CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "bill_2", ProjectID: "proj_2", BillNumber: "RB/2024/002", BillDate: "2024-03-20",
			BOQItems: []billingdomain.Line{{ItemID: "boq_3", Quantity: 50, Rate: 100000, Total: 5000000}},
			Subtotal: 5000000, RetentionPercentage: 10, RetentionAmount: 500000, BillAmount: 4500000,
			Status: billingdomain.StatusApproved, CreatedAt: now, UpdatedAt: now,
		},
	})
}

func seedInvoices(ctx context.Context, store *storage.Store) {
	now := time.Now().UTC()
	store.Set(ctx, "invoices", []invoicedomain.Invoice{
		{
			ID: "inv_1", ProjectID: "proj_1", InvoiceNumber: "INV/2024/001", BillID: "bill_1",
			InvoiceDate: "2024-02-15", DueDate: "2024-03-15",
			Amount: 450000, Tax: 81000, TotalAmount: 531000,
			Status: invoicedomain.StatusPaid, ClientID: "client_1", CreatedAt: now,
		},
		{
			ID: "inv_2", ProjectID: "proj_2", InvoiceNumber: "INV/2024/002", BillID: "bill_2",
			InvoiceDate: "2024-03-20", DueDate: "2024-04-20",
			Amount: 4500000, Tax: 810000, TotalAmount: 5310000,
			Status: invoicedomain.StatusSent, ClientID: "client_2", CreatedAt: now,
		},
	})
}

func seedVendors(ctx context.Context, store *storage.Store) {
	now := time.Now().UTC()
	store.Set(ctx, "vendors", []vendors.Vendor{
		{
			ID: "vendor_1", Name: "Steel Supplies India Ltd", Category: vendors.CategoryMaterial,
			Email: "sales@steelsupplies.com", Phone: "+91 98765-43210",
			Address: "Industrial Estate, Mumbai", GSTIN: "27AAPPP0000A1Z5", CreatedAt: now,
		},
		{
			ID: "vendor_2", Name: "Concrete Pumping Services", Category: vendors.CategoryLabor,
			Email: "info@concretepump.com", Phone: "+91 98765-43211",
			Address: "Construction Hub, Bangalore", CreatedAt: now,
		},
		{
			ID: "vendor_3", Name: "Heavy Equipment Rentals", Category: vendors.CategoryEquipment,
			Email: "rentals@heavyequip.com", Phone: "+91 98765-43212",
			Address: "Equipment Park, Delhi", CreatedAt: now,
		},
	})
}

func seedMaterials(ctx context.Context, store *storage.Store) {
	now := time.Now().UTC()
	materials := []inventory.Material{
		{ID: "mat_1", Name: "Cement (50kg bag)", Unit: "bag", Category: "cement", ReorderLevel: 500, CreatedAt: now},
		{ID: "mat_2", Name: "Steel Bars (10mm)", Unit: "ton", Category: "steel", ReorderLevel: 50, CreatedAt: now},
		{ID: "mat_3", Name: "Fine Sand", Unit: "cum", Category: "aggregates", ReorderLevel: 100, CreatedAt: now},
		{ID: "mat_4", Name: "Coarse Aggregate 20mm", Unit: "cum", Category: "aggregates", ReorderLevel: 150, CreatedAt: now},
	}
	store.Set(ctx, "materials", materials)

	// Stock starts at 1.5x the reorder level so nothing is low on a fresh
	// install.
	stocks := make([]inventory.Stock, 0, len(materials))
	for _, m := range materials {
		stocks = append(stocks, inventory.Stock{
			ID:           "stock_" + m.ID,
			MaterialID:   m.ID,
			CurrentStock: math.Floor(m.ReorderLevel * 1.5),
			LastUpdated:  now,
		})
	}
	store.Set(ctx, "material_stock", stocks)
}

func seedEquipment(ctx context.Context, store *storage.Store) {
	now := time.Now().UTC()
	store.Set(ctx, "equipment", []equipment.Equipment{
		{
			ID: "equip_1", Name: "Excavator CAT 320", Category: "excavator",
			SerialNumber: "CAT-2024-001", PurchaseDate: "2022-06-15", PurchaseValue: 2500000,
			Status: equipment.StatusInUse, CreatedAt: now,
		},
		{
			ID: "equip_2", Name: "Tower Crane Liebherr 500HC", Category: "crane",
			SerialNumber: "LBH-2023-456", PurchaseDate: "2023-03-20", PurchaseValue: 5000000,
			Status: equipment.StatusInUse, CreatedAt: now,
		},
		{
			ID: "equip_3", Name: "Concrete Pump", Category: "pump",
			SerialNumber: "PUMP-2024-789", PurchaseDate: "2024-01-10", PurchaseValue: 1500000,
			Status: equipment.StatusAvailable, CreatedAt: now,
		},
	})

	store.Set(ctx, "equipment_allocations", []equipment.Allocation{
		{ID: "alloc_1", EquipmentID: "equip_1", ProjectID: "proj_1", AllocationDate: "2024-01-20", CreatedAt: now},
		{ID: "alloc_2", EquipmentID: "equip_2", ProjectID: "proj_2", AllocationDate: "2024-03-05", CreatedAt: now},
	})
}

func seedDailyReports(ctx context.Context, store *storage.Store) {
	now := time.Now().UTC()
	store.Set(ctx, "daily_reports", []dailyreports.Report{
		{
			ID: "report_1", ProjectID: "proj_1", ReportDate: "2024-12-20",
			SiteEngineer:    "Rajesh Kumar",
			WorkDescription: "Foundation excavation work on Block A",
			QuantityExecuted: 500, Unit: "cum", BOQItemID: "boq_1",
			Weather: "Partly cloudy, temperature 28°C", NoOfWorkers: 25,
			Remarks: "Work progressing as per schedule", Photos: []string{}, CreatedAt: now,
		},
		{
			ID: "report_2", ProjectID: "proj_2", ReportDate: "2024-12-20",
			SiteEngineer:    "Priya Sharma",
			WorkDescription: "Pile cap casting for east wing",
			QuantityExecuted: 50, Unit: "no", BOQItemID: "boq_3",
			Weather: "Clear and dry", NoOfWorkers: 30,
			Remarks: "Quality checks completed and passed", CreatedAt: now,
		},
	})
}
