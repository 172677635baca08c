package database

import (
	"log"

	"wisely_backend/internal/model"

	"gorm.io/gorm"
)

func intPtr(v int) *int { return &v }

// SeedReferenceData loads the college and teacher directories on first
// start. When both tables already hold rows the seed is skipped, so
// restarts never duplicate or overwrite curated data.
func SeedReferenceData(db *gorm.DB) error {
	var collegeCount, teacherCount int64
	if err := db.Model(&model.College{}).Count(&collegeCount).Error; err != nil {
		return err
	}
	if err := db.Model(&model.Teacher{}).Count(&teacherCount).Error; err != nil {
		return err
	}

	if collegeCount > 0 && teacherCount > 0 {
		log.Println("Database already seeded, skipping")
		return nil
	}

	colleges := []model.College{
		{
			Name:         "Indian Institute of Technology (IIT) Delhi",
			Location:     "New Delhi",
			Courses:      []string{"Computer Science", "Electrical Engineering", "Mechanical Engineering", "Civil Engineering"},
			Fees:         200000,
			Ranking:      intPtr(2),
			EntranceExam: "JEE Advanced",
			Description:  "Premier engineering institute known for excellence in technology and research.",
		},
		{
			Name:         "Indian Institute of Science (IISc)",
			Location:     "Bangalore",
			Courses:      []string{"Physics", "Chemistry", "Mathematics", "Computer Science"},
			Fees:         150000,
			Ranking:      intPtr(1),
			EntranceExam: "GATE/JAM",
			Description:  "Leading research university in science and engineering.",
		},
		{
			Name:         "All India Institute of Medical Sciences (AIIMS)",
			Location:     "New Delhi",
			Courses:      []string{"Medicine", "Nursing", "Pharmacy", "Biotechnology"},
			Fees:         1500,
			Ranking:      intPtr(1),
			EntranceExam: "NEET",
			Description:  "Top medical college in India with world-class facilities.",
		},
		{
			Name:         "University of Delhi",
			Location:     "New Delhi",
			Courses:      []string{"Arts", "Science", "Commerce", "Law"},
			Fees:         25000,
			Ranking:      intPtr(8),
			EntranceExam: "CUET",
			Description:  "One of India's largest and most prestigious universities.",
		},
		{
			Name:         "Indian Institute of Management (IIM) Ahmedabad",
			Location:     "Ahmedabad",
			Courses:      []string{"MBA", "Executive MBA", "Management", "Business Analytics"},
			Fees:         2500000,
			Ranking:      intPtr(1),
			EntranceExam: "CAT",
			Description:  "Premier business school known for producing top management professionals.",
		},
		{
			Name:         "Jawaharlal Nehru University",
			Location:     "New Delhi",
			Courses:      []string{"Political Science", "History", "Economics", "International Relations"},
			Fees:         20000,
			Ranking:      intPtr(12),
			EntranceExam: "JNUEE",
			Description:  "Leading university for social sciences and humanities.",
		},
		{
			Name:         "Indian Statistical Institute",
			Location:     "Kolkata",
			Courses:      []string{"Statistics", "Mathematics", "Computer Science", "Economics"},
			Fees:         100000,
			Ranking:      intPtr(15),
			EntranceExam: "ISI Admission Test",
			Description:  "Renowned institute for statistics and mathematical sciences.",
		},
		{
			Name:         "Banaras Hindu University",
			Location:     "Varanasi",
			Courses:      []string{"Engineering", "Medicine", "Arts", "Science"},
			Fees:         80000,
			Ranking:      intPtr(18),
			EntranceExam: "BHU UET",
			Description:  "One of India's oldest and largest residential universities.",
		},
	}

	teachers := []model.Teacher{
		{
			Name:            "Dr. Priya Sharma",
			Email:           "priya.sharma@example.com",
			Specializations: []string{"IELTS Preparation", "Academic Writing", "Business English"},
			Experience:      8,
			Qualifications:  []string{"PhD in English Literature", "TESOL Certification", "Cambridge CELTA"},
			HourlyRate:      1500,
			Rating:          48,
			TotalReviews:    156,
			Bio:             "Expert English teacher with 8 years of experience in IELTS preparation and academic writing.",
		},
		{
			Name:            "Prof. Rajesh Kumar",
			Email:           "rajesh.kumar@example.com",
			Specializations: []string{"English Grammar", "Spoken English", "Pronunciation"},
			Experience:      12,
			Qualifications:  []string{"MA English", "B.Ed", "Trinity College London Certification"},
			HourlyRate:      1200,
			Rating:          46,
			TotalReviews:    203,
			Bio:             "Experienced educator specializing in grammar fundamentals and spoken English fluency.",
		},
		{
			Name:            "Ms. Anita Patel",
			Email:           "anita.patel@example.com",
			Specializations: []string{"Business English", "Presentation Skills", "Professional Writing"},
			Experience:      6,
			Qualifications:  []string{"MBA", "TESOL Certification", "Business Communication Diploma"},
			HourlyRate:      1800,
			Rating:          49,
			TotalReviews:    89,
			Bio:             "Business English specialist helping professionals improve their communication skills.",
		},
		{
			Name:            "Dr. Michael Johnson",
			Email:           "michael.johnson@example.com",
			Specializations: []string{"Academic Writing", "Research Methodology", "Scientific English"},
			Experience:      15,
			Qualifications:  []string{"PhD in Applied Linguistics", "Cambridge DELTA", "IELTS Examiner"},
			HourlyRate:      2200,
			Rating:          50,
			TotalReviews:    178,
			Bio:             "International expert in academic writing and scientific English communication.",
		},
		{
			Name:            "Ms. Deepika Singh",
			Email:           "deepika.singh@example.com",
			Specializations: []string{"Spoken English", "Conversation Practice", "Accent Training"},
			Experience:      4,
			Qualifications:  []string{"MA English", "TEFL Certification", "Public Speaking Diploma"},
			HourlyRate:      1000,
			Rating:          45,
			TotalReviews:    67,
			Bio:             "Young and energetic teacher focused on improving spoken English and confidence building.",
		},
		{
			Name:            "Prof. Sarah Williams",
			Email:           "sarah.williams@example.com",
			Specializations: []string{"IELTS Preparation", "TOEFL Preparation", "Test Strategies"},
			Experience:      10,
			Qualifications:  []string{"MA TESOL", "Cambridge CELTA", "IELTS Official Trainer"},
			HourlyRate:      1700,
			Rating:          47,
			TotalReviews:    142,
			Bio:             "Certified IELTS trainer with proven track record of helping students achieve band 8+.",
		},
		{
			Name:            "Mr. Arjun Mehta",
			Email:           "arjun.mehta@example.com",
			Specializations: []string{"English Grammar", "Writing Skills", "Literature"},
			Experience:      7,
			Qualifications:  []string{"MA English Literature", "B.Ed", "Creative Writing Certificate"},
			HourlyRate:      1300,
			Rating:          44,
			TotalReviews:    98,
			Bio:             "Literature enthusiast teaching grammar and writing through creative approaches.",
		},
		{
			Name:            "Dr. Lisa Chen",
			Email:           "lisa.chen@example.com",
			Specializations: []string{"Business English", "Cross-cultural Communication", "Leadership English"},
			Experience:      9,
			Qualifications:  []string{"PhD Business Communication", "Executive Coach Certification", "TESOL"},
			HourlyRate:      2000,
			Rating:          48,
			TotalReviews:    134,
			Bio:             "Executive communication coach specializing in leadership and cross-cultural business English.",
		},
	}

	if collegeCount == 0 {
		if err := db.Create(&colleges).Error; err != nil {
			return err
		}
		log.Printf("Seeded %d colleges", len(colleges))
	}

	if teacherCount == 0 {
		if err := db.Create(&teachers).Error; err != nil {
			return err
		}
		log.Printf("Seeded %d teachers", len(teachers))
	}

	return nil
}
