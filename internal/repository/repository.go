package repository

import "gorm.io/gorm"

// Repository агрегат всех репозиториев
type Repository struct {
	User       UserRepository
	Role       RoleRepository
	Faculty    FacultyRepository
	Group      GroupRepository
	Discipline DisciplineRepository
	Teacher    TeacherRepository
	Audithoria AudithoriaRepository
	LessonType LessonTypeRepository
	Schedule   ScheduleRepository
}

// NewRepository создаёт агрегат репозиториев
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:       NewUserRepo(db),
		Role:       NewRoleRepo(db),
		Faculty:    NewFacultyRepo(db),
		Group:      NewGroupRepo(db),
		Discipline: NewDisciplineRepo(db),
		Teacher:    NewTeacherRepo(db),
		Audithoria: NewAudithoriaRepo(db),
		LessonType: NewLessonTypeRepo(db),
		Schedule:   NewScheduleRepo(db),
	}
}
