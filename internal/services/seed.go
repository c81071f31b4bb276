package services

import "aihub/internal/domain"

// seedEvents returns the two canonical events inserted on first startup.
func seedEvents() []*domain.Event {
	return []*domain.Event{
		{
			Slug: "ai-healthcare-research-2025",
			Title: domain.Bilingual{
				Vi: "Hợp tác nghiên cứu về AI cho Y tế",
				En: "Research Collaboration on AI for Healthcare",
			},
			Type: domain.EventTypeSeminar,
			Subtitle: &domain.Bilingual{
				Vi: "Thảo luận về giải pháp AI cho ngành y tế",
				En: "Discussion on AI solutions for healthcare",
			},
			Description: domain.Bilingual{
				Vi: "Đại diện các trường đại học, bệnh viện và các doanh nghiệp để thảo luận các nội dung: Ngành y tế đang có các bài toán gì về giải pháp số, dữ liệu và trí tuệ nhân tạo; Ngành y tế đang có các dữ liệu gì; Doanh nghiệp đang có các giải pháp gì; Chọn bài toán cần giải quyết; Mô hình hợp tác; Kế hoạch nghiên cứu và thử nghiệm.",
				En: "Representatives from universities, hospitals, and enterprises discuss: What digital solutions, data, and AI challenges does the healthcare sector face; What data does the healthcare sector have; What solutions do enterprises offer; Selecting problems to solve; Collaboration models; Research and pilot plans.",
			},
			TargetAudience: &domain.Bilingual{
				Vi: "Đại diện các trường đại học, bệnh viện, doanh nghiệp công nghệ y tế",
				En: "Representatives from universities, hospitals, healthcare technology enterprises",
			},
			Date:      "2025-03-15",
			StartTime: "14:00",
			EndTime:   "16:00",
			Venue: domain.Venue{
				Name: domain.Bilingual{
					Vi: "Trường Đại học Bách khoa – ĐHQG-HCM",
					En: "VNU-HCM University of Technology",
				},
				Address:       "268 Lý Thường Kiệt, Phường Diên Hồng, Quận 10",
				City:          "TP. Hồ Chí Minh",
				GoogleMapsURL: "https://maps.google.com/?q=10.7729391,106.6579422",
			},
			RegistrationDeadline: "2025-03-10",
			Status:               domain.EventStatusPast,
			IsFeatured:           true,
			Agenda: []domain.AgendaItem{
				{SortOrder: 1, Title: domain.Bilingual{Vi: "Bài toán giải pháp số, dữ liệu và AI trong y tế", En: "Digital solutions, data, and AI challenges in healthcare"}, TimeSlot: "14:00"},
				{SortOrder: 2, Title: domain.Bilingual{Vi: "Dữ liệu hiện có trong ngành y tế", En: "Available data in the healthcare sector"}, TimeSlot: "14:20"},
				{SortOrder: 3, Title: domain.Bilingual{Vi: "Giải pháp từ doanh nghiệp", En: "Enterprise solutions"}, TimeSlot: "14:40"},
				{SortOrder: 4, Title: domain.Bilingual{Vi: "Chọn bài toán cần giải quyết", En: "Selecting problems to solve"}, TimeSlot: "15:00"},
				{SortOrder: 5, Title: domain.Bilingual{Vi: "Mô hình hợp tác", En: "Collaboration models"}, TimeSlot: "15:20"},
				{SortOrder: 6, Title: domain.Bilingual{Vi: "Kế hoạch nghiên cứu và thử nghiệm", En: "Research and pilot plans"}, TimeSlot: "15:40"},
			},
		},
		{
			Slug: "ai-workforce-training-2025",
			Title: domain.Bilingual{
				Vi: "Đào tạo nhân lực AI cho Doanh nghiệp",
				En: "AI Workforce Training for Enterprises",
			},
			Type: domain.EventTypeSeminar,
			Subtitle: &domain.Bilingual{
				Vi: "Thảo luận về đào tạo nhân lực AI",
				En: "Discussion on AI workforce training",
			},
			Description: domain.Bilingual{
				Vi: "Đại diện các trường đại học và các doanh nghiệp để thảo luận các nội dung: Nhu cầu nhân lực AI cho doanh nghiệp (DN công nghệ và doanh nghiệp không phải công nghệ); Các khó khăn của doanh nghiệp khi tuyển dụng và đào tạo nhân lực AI; Các hình thức đào tạo AI hiện nay từ các trường đại học; Chia sẻ kinh nghiệm, giải pháp và mô hình hợp tác; Kế hoạch triển khai.",
				En: "Representatives from universities and enterprises discuss: AI workforce needs for enterprises (tech and non-tech companies); Challenges in recruiting and training AI workforce; Current AI training formats from universities; Sharing experiences, solutions, and collaboration models; Implementation plan.",
			},
			TargetAudience: &domain.Bilingual{
				Vi: "Đại diện các trường đại học, doanh nghiệp công nghệ và doanh nghiệp không phải công nghệ",
				En: "Representatives from universities, tech enterprises, and non-tech enterprises",
			},
			Date:      "2025-04-15",
			StartTime: "09:00",
			EndTime:   "11:00",
			Venue: domain.Venue{
				Name: domain.Bilingual{
					Vi: "Hội trường Bách Khoa – Trường ĐH Bách Khoa – ĐHQG-HCM",
					En: "Bach Khoa Hall, VNU-HCM University of Technology",
				},
				Address:       "268 Lý Thường Kiệt, Phường Diên Hồng, Quận 10",
				City:          "TP. Hồ Chí Minh",
				GoogleMapsURL: "https://maps.google.com/?q=10.7729391,106.6579422",
			},
			RegistrationDeadline: "2025-04-10",
			Status:               domain.EventStatusPast,
			IsFeatured:           false,
			Agenda: []domain.AgendaItem{
				{SortOrder: 1, Title: domain.Bilingual{Vi: "Nhu cầu nhân lực AI cho doanh nghiệp", En: "AI workforce needs for enterprises"}, Description: &domain.Bilingual{Vi: "DN công nghệ và doanh nghiệp không phải công nghệ", En: "Tech and non-tech companies"}, TimeSlot: "09:00"},
				{SortOrder: 2, Title: domain.Bilingual{Vi: "Khó khăn khi tuyển dụng và đào tạo nhân lực AI", En: "Challenges in recruiting and training AI workforce"}, TimeSlot: "09:20"},
				{SortOrder: 3, Title: domain.Bilingual{Vi: "Các hình thức đào tạo AI từ các trường đại học", En: "Current AI training formats from universities"}, TimeSlot: "09:40"},
				{SortOrder: 4, Title: domain.Bilingual{Vi: "Chia sẻ kinh nghiệm, giải pháp và mô hình hợp tác", En: "Sharing experiences, solutions, and collaboration models"}, TimeSlot: "10:00"},
				{SortOrder: 5, Title: domain.Bilingual{Vi: "Kế hoạch triển khai", En: "Implementation plan"}, TimeSlot: "10:30"},
			},
		},
	}
}
