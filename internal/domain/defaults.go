package domain

// Defaults below replicate the values the dashboard historically fell back
// to when a storage key was absent or unreadable. Seeding and hydration
// both use them so a fresh deployment renders a non-empty panel.

func DefaultPortfolios() []PortfolioItem {
	return []PortfolioItem{
		{
			ID:             1,
			Title:          "Modern Minimalist House",
			Category:       "Residential",
			ImageURL:       "https://images.unsplash.com/photo-1600585154340-be6161a56a0c",
			Description:    "A beautiful modern minimalist house with clean lines",
			CompletedDate:  "2025-09-15",
			ShowOnHomepage: true,
			IsActive:       true,
		},
	}
}

func DefaultOfferings() []ServiceOffering {
	return []ServiceOffering{
		{
			ID:             1,
			Name:           "Desain Interior",
			Description:    "Layanan desain interior lengkap untuk rumah dan kantor",
			Price:          "Mulai dari Rp 10.000.000",
			Duration:       "2-4 bulan",
			IsActive:       true,
			ShowOnHomepage: true,
		},
	}
}

func DefaultCalculatorSettings() CalculatorSettings {
	return CalculatorSettings{
		BasePrice: 2500000,
		ServiceMultipliers: map[string]float64{
			"interior":     1,
			"architecture": 1.5,
			"renovation":   1.2,
		},
		MaterialMultipliers: map[string]float64{
			"standard": 1,
			"premium":  1.5,
			"luxury":   2,
		},
		RoomMultiplierPercentage: 10,
		BaseRoomCount:            3,
	}
}

func DefaultProjects() []Project {
	return []Project{
		{
			ID:          1,
			ClientName:  "Budi Santoso",
			ProjectName: "Renovasi Rumah Utama",
			Service:     "Desain Interior",
			Status:      ProjectInProgress,
			StartDate:   "2025-09-15",
			Budget:      150000000,
			Progress:    65,
		},
	}
}

func DefaultUsers() []UserAccount {
	return []UserAccount{
		{
			ID:       1,
			Name:     "Admin Utama",
			Email:    "admin@cema.com",
			Role:     RoleAdmin,
			JoinDate: "2024-01-01",
			Status:   "active",
		},
	}
}

func DefaultChatThreads() []ChatThread {
	return []ChatThread{
		{
			ID:          2,
			Name:        "Budi Santoso",
			Email:       "budi@example.com",
			LastMessage: "Kapan kita bisa meeting untuk review desain?",
			UnreadCount: 2,
			Online:      true,
		},
	}
}

func DefaultChatMessages() []ChatMessage {
	return []ChatMessage{
		{
			ID:         1,
			SenderID:   2,
			SenderName: "Budi Santoso",
			Message:    "Halo, saya ingin tanya tentang progress proyek",
			Timestamp:  "2025-10-30T10:30:00+07:00",
			IsAdmin:    false,
		},
	}
}
