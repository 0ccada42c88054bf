package fleet

import "github.com/drivewise/fleet-api/models"

// SeedVehicles returns the deterministic default fleet used whenever the
// vehicle snapshot is missing or malformed. The app always renders something.
func SeedVehicles() []models.Vehicle {
	return []models.Vehicle{
		{
			ID:       "veh_1",
			Plate:    "KZC 123",
			Vin:      "WVWZZZ1JZXW000001",
			Make:     "Toyota",
			Model:    "Corolla",
			Year:     2018,
			Color:    "White",
			Owner:    "Noyanlar Fleet",
			Photo:    "https://images.unsplash.com/photo-1555231953-8e46195a8f78?q=80&w=1200&auto=format&fit=crop",
			Odometer: 86500,
			Mot:      models.MotRecord{Date: "2025-11-22", Result: "Pass"},
			Insurance: models.InsuranceRecord{
				Start:   "2025-01-01",
				End:     "2025-12-31",
				Insurer: "Kıbrıs Sigorta",
				Policy:  "TR-NS-99812",
			},
			NextService: models.ServiceRecord{Date: "2025-12-10", Type: "Oil + Filters"},
			Maintenance: []models.MaintenanceEntry{
				{Date: "2025-06-02", Km: 82000, Type: "Oil Change", Cost: 75, Notes: "5W-30"},
				{Date: "2024-12-10", Km: 76000, Type: "Front brake pads", Cost: 120, Notes: "Brembo"},
			},
			Crashes: []models.CrashEntry{
				{Date: "2023-03-12", Severity: models.SeverityMinor, Desc: "Rear bumper scratch", Cost: 250},
			},
			Docs: []models.Document{
				{Name: "MOT Cert 2024.pdf", Type: "inspection"},
				{Name: "Insurance 2025.pdf", Type: "insurance"},
			},
		},
		{
			ID:       "veh_2",
			Plate:    "NBT 507",
			Vin:      "WAUZZZ8K9DA123456",
			Make:     "Hyundai",
			Model:    "i20",
			Year:     2020,
			Color:    "Blue",
			Owner:    "Noymax Development",
			Photo:    "https://images.unsplash.com/photo-1605559424843-9e4c1a79f6a8?q=80&w=1200&auto=format&fit=crop",
			Odometer: 41200,
			Mot:      models.MotRecord{Date: "2026-01-15", Result: "Pass"},
			Insurance: models.InsuranceRecord{
				Start:   "2025-04-15",
				End:     "2026-04-14",
				Insurer: "Near East Insurance",
				Policy:  "NE-44121",
			},
			NextService: models.ServiceRecord{Date: "2026-02-01", Type: "Full Service"},
			Maintenance: []models.MaintenanceEntry{
				{Date: "2025-02-01", Km: 38000, Type: "Tire Rotation", Cost: 30},
			},
			Crashes: []models.CrashEntry{},
			Docs: []models.Document{
				{Name: "Reg-Card.png", Type: "registration"},
			},
		},
		{
			ID:       "veh_3",
			Plate:    "GME 904",
			Vin:      "VF1BB0R0A12398765",
			Make:     "Renault",
			Model:    "Clio",
			Year:     2016,
			Color:    "Silver",
			Owner:    "Olea Residence",
			Photo:    "https://images.unsplash.com/photo-1600359758489-0867abfa9f74?q=80&w=1200&auto=format&fit=crop",
			Odometer: 125300,
			Mot:      models.MotRecord{Date: "2025-10-29", Result: "Due"},
			Insurance: models.InsuranceRecord{
				Start:   "2025-03-01",
				End:     "2025-11-01",
				Insurer: "Anadolu Sigorta",
				Policy:  "AN-22219",
			},
			NextService: models.ServiceRecord{Date: "2025-11-05", Type: "Belts & Coolant"},
			Maintenance: []models.MaintenanceEntry{
				{Date: "2025-05-30", Km: 119000, Type: "Battery Replace", Cost: 140},
			},
			Crashes: []models.CrashEntry{
				{Date: "2022-08-20", Severity: models.SeverityModerate, Desc: "Door dent LH", Cost: 480},
			},
			Docs: []models.Document{
				{Name: "MOT Cert 2023.pdf", Type: "inspection"},
			},
		},
	}
}
