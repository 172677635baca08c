package repository

import (
	"testing"

	"wisely_backend/internal/model"

	"gorm.io/gorm"
)

func seedTeachers(t *testing.T, repo *TeacherRepository) {
	t.Helper()
	teachers := []model.Teacher{
		{Name: "Asha Verma", Email: "asha@wisely.test", Specializations: []string{"IELTS", "Grammar"}, Qualifications: []string{"MA English"}, Experience: 12, HourlyRate: 1500, Rating: 49, TotalReviews: 210},
		{Name: "Rohit Iyer", Email: "rohit@wisely.test", Specializations: []string{"TOEFL"}, Qualifications: []string{"BEd"}, Experience: 5, HourlyRate: 800, Rating: 45, TotalReviews: 80},
		{Name: "Meera Nair", Email: "meera@wisely.test", Specializations: []string{"Spoken English"}, Qualifications: []string{"MA Linguistics"}, Experience: 8, HourlyRate: 1100, Rating: 47, TotalReviews: 130},
		{Name: "Vikram Shah", Email: "vikram@wisely.test", Specializations: []string{"Business English"}, Qualifications: []string{"MBA"}, Experience: 3, HourlyRate: 600, Rating: 41, TotalReviews: 25},
	}
	for i := range teachers {
		if err := repo.Create(&teachers[i]); err != nil {
			t.Fatalf("seed teacher %q: %v", teachers[i].Name, err)
		}
	}
}

func TestTeacherRepositoryFindAll(t *testing.T) {
	db := newRepoDB(t, &model.Teacher{})
	repo := NewTeacherRepository(db)
	seedTeachers(t, repo)

	teachers, err := repo.FindAll()
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(teachers) != 4 {
		t.Fatalf("got %d teachers, want 4", len(teachers))
	}
	for i := 1; i < len(teachers); i++ {
		if teachers[i-1].Rating < teachers[i].Rating {
			t.Fatalf("teachers not ordered by rating desc: %d before %d", teachers[i-1].Rating, teachers[i].Rating)
		}
	}
}

func TestTeacherRepositorySearch(t *testing.T) {
	db := newRepoDB(t, &model.Teacher{})
	repo := NewTeacherRepository(db)
	seedTeachers(t, repo)

	t.Run("min experience", func(t *testing.T) {
		got, err := repo.Search(TeacherFilter{MinExperience: 8})
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("got %d teachers, want 2", len(got))
		}
		for _, teacher := range got {
			if teacher.Experience < 8 {
				t.Errorf("%s has %d years, below the floor", teacher.Name, teacher.Experience)
			}
		}
	})

	t.Run("max hourly rate", func(t *testing.T) {
		got, err := repo.Search(TeacherFilter{MaxRate: 1100})
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		for _, teacher := range got {
			if teacher.HourlyRate > 1100 {
				t.Errorf("%s charges %d, above the cap", teacher.Name, teacher.HourlyRate)
			}
		}
		if len(got) != 3 {
			t.Errorf("got %d teachers, want 3", len(got))
		}
	})

	t.Run("conjunction", func(t *testing.T) {
		got, err := repo.Search(TeacherFilter{MinExperience: 6, MaxRate: 1200})
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		if len(got) != 1 || got[0].Name != "Meera Nair" {
			t.Errorf("got %v, want only Meera Nair", got)
		}
	})
}

func TestTeacherFilterEmpty(t *testing.T) {
	if !(TeacherFilter{}).Empty() {
		t.Error("zero filter should be empty")
	}
	if (TeacherFilter{MaxRate: 500}).Empty() {
		t.Error("filter with a rate cap should not be empty")
	}
}

func TestTeacherRepositoryFindByID(t *testing.T) {
	db := newRepoDB(t, &model.Teacher{})
	repo := NewTeacherRepository(db)
	seedTeachers(t, repo)

	teacher, err := repo.FindByID(2)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if teacher.Name != "Rohit Iyer" {
		t.Errorf("name = %q, want Rohit Iyer", teacher.Name)
	}

	if _, err := repo.FindByID(42); err != gorm.ErrRecordNotFound {
		t.Errorf("err = %v, want gorm.ErrRecordNotFound", err)
	}
}
