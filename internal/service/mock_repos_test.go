package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Looz41/Diplom-sub000/internal/model"
	"github.com/Looz41/Diplom-sub000/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = "user-" + user.Username
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		result = append(result, *u)
	}
	return result, nil
}

// ── Mock RoleRepository ──

type mockRoleRepo struct {
	roles map[string]*model.Role
}

func newMockRoleRepo() *mockRoleRepo {
	return &mockRoleRepo{
		roles: map[string]*model.Role{
			model.RoleAdmin: {RoleID: "role-admin", Value: model.RoleAdmin},
			model.RoleUser:  {RoleID: "role-user", Value: model.RoleUser},
		},
	}
}

func (m *mockRoleRepo) GetByValue(_ context.Context, value string) (*model.Role, error) {
	if r, ok := m.roles[value]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock FacultyRepository ──

// mockFacultyRepo повторяет Preload реального репозитория: чтение
// возвращает факультет вместе с его группами
type mockFacultyRepo struct {
	faculties map[string]*model.Faculty
	groups    *mockGroupRepo
}

func newMockFacultyRepo(groups *mockGroupRepo) *mockFacultyRepo {
	return &mockFacultyRepo{faculties: make(map[string]*model.Faculty), groups: groups}
}

func (m *mockFacultyRepo) withGroups(f *model.Faculty) *model.Faculty {
	hydrated := *f
	hydrated.Groups = nil
	for _, g := range m.groups.groups {
		if g.FacultyID != nil && *g.FacultyID == f.FacultyID {
			hydrated.Groups = append(hydrated.Groups, *g)
		}
	}
	return &hydrated
}

func (m *mockFacultyRepo) Create(_ context.Context, faculty *model.Faculty) error {
	if faculty.FacultyID == "" {
		faculty.FacultyID = "fac-" + faculty.Name
	}
	m.faculties[faculty.FacultyID] = faculty
	return nil
}

func (m *mockFacultyRepo) GetByID(_ context.Context, id string) (*model.Faculty, error) {
	if f, ok := m.faculties[id]; ok {
		return m.withGroups(f), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFacultyRepo) GetByName(_ context.Context, name string) (*model.Faculty, error) {
	for _, f := range m.faculties {
		if f.Name == name {
			return m.withGroups(f), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFacultyRepo) List(_ context.Context) ([]model.Faculty, error) {
	var result []model.Faculty
	for _, f := range m.faculties {
		result = append(result, *m.withGroups(f))
	}
	return result, nil
}

func (m *mockFacultyRepo) Update(_ context.Context, faculty *model.Faculty) error {
	m.faculties[faculty.FacultyID] = faculty
	return nil
}

func (m *mockFacultyRepo) Delete(_ context.Context, id string) error {
	delete(m.faculties, id)
	return nil
}

// ── Mock GroupRepository ──

type mockGroupRepo struct {
	groups map[string]*model.Group
}

func newMockGroupRepo() *mockGroupRepo {
	return &mockGroupRepo{groups: make(map[string]*model.Group)}
}

func (m *mockGroupRepo) Create(_ context.Context, group *model.Group) error {
	if group.GroupID == "" {
		group.GroupID = "grp-" + group.Name
	}
	m.groups[group.GroupID] = group
	return nil
}

func (m *mockGroupRepo) GetByID(_ context.Context, id string) (*model.Group, error) {
	if g, ok := m.groups[id]; ok {
		return g, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGroupRepo) GetByName(_ context.Context, name string) (*model.Group, error) {
	for _, g := range m.groups {
		if g.Name == name {
			return g, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGroupRepo) ListByFaculty(_ context.Context, facultyID string) ([]model.Group, error) {
	var result []model.Group
	for _, g := range m.groups {
		if g.FacultyID != nil && *g.FacultyID == facultyID {
			result = append(result, *g)
		}
	}
	return result, nil
}

func (m *mockGroupRepo) Update(_ context.Context, group *model.Group) error {
	m.groups[group.GroupID] = group
	return nil
}

func (m *mockGroupRepo) Delete(_ context.Context, id string) error {
	delete(m.groups, id)
	return nil
}

func (m *mockGroupRepo) DetachFromFaculty(_ context.Context, facultyID string) error {
	for _, g := range m.groups {
		if g.FacultyID != nil && *g.FacultyID == facultyID {
			g.FacultyID = nil
		}
	}
	return nil
}

// ── Mock DisciplineRepository ──

type mockDisciplineRepo struct {
	disciplines map[string]*model.Discipline
}

func newMockDisciplineRepo() *mockDisciplineRepo {
	return &mockDisciplineRepo{disciplines: make(map[string]*model.Discipline)}
}

func (m *mockDisciplineRepo) Create(_ context.Context, discipline *model.Discipline) error {
	if discipline.DisciplineID == "" {
		discipline.DisciplineID = "dis-" + discipline.Name
	}
	m.disciplines[discipline.DisciplineID] = discipline
	return nil
}

func (m *mockDisciplineRepo) GetByID(_ context.Context, id string) (*model.Discipline, error) {
	if d, ok := m.disciplines[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDisciplineRepo) GetByName(_ context.Context, name string) (*model.Discipline, error) {
	for _, d := range m.disciplines {
		if d.Name == name {
			return d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDisciplineRepo) List(_ context.Context) ([]model.Discipline, error) {
	var result []model.Discipline
	for _, d := range m.disciplines {
		result = append(result, *d)
	}
	return result, nil
}

func (m *mockDisciplineRepo) Update(_ context.Context, discipline *model.Discipline) error {
	stored, ok := m.disciplines[discipline.DisciplineID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Name = discipline.Name
	stored.AcademicHours = discipline.AcademicHours
	return nil
}

func (m *mockDisciplineRepo) ReplaceGroups(_ context.Context, discipline *model.Discipline, groups []model.Group) error {
	stored, ok := m.disciplines[discipline.DisciplineID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Groups = groups
	return nil
}

func (m *mockDisciplineRepo) ReplaceTeachers(_ context.Context, discipline *model.Discipline, teachers []model.Teacher) error {
	stored, ok := m.disciplines[discipline.DisciplineID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Teachers = teachers
	return nil
}

func (m *mockDisciplineRepo) Delete(_ context.Context, id string) error {
	delete(m.disciplines, id)
	return nil
}

// ── Mock TeacherRepository ──

type mockTeacherRepo struct {
	teachers map[string]*model.Teacher
}

func newMockTeacherRepo() *mockTeacherRepo {
	return &mockTeacherRepo{teachers: make(map[string]*model.Teacher)}
}

func (m *mockTeacherRepo) Create(_ context.Context, teacher *model.Teacher) error {
	if teacher.TeacherID == "" {
		teacher.TeacherID = "tch-" + teacher.Surname
	}
	m.teachers[teacher.TeacherID] = teacher
	return nil
}

func (m *mockTeacherRepo) GetByID(_ context.Context, id string) (*model.Teacher, error) {
	if t, ok := m.teachers[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) GetBySurname(_ context.Context, surname string) (*model.Teacher, error) {
	for _, t := range m.teachers {
		if t.Surname == surname {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) GetByFullName(_ context.Context, surname, name, patronymic string) (*model.Teacher, error) {
	for _, t := range m.teachers {
		if t.Surname == surname && t.Name == name && t.Patronymic == patronymic {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) List(_ context.Context) ([]model.Teacher, error) {
	var result []model.Teacher
	for _, t := range m.teachers {
		result = append(result, *t)
	}
	return result, nil
}

func (m *mockTeacherRepo) Update(_ context.Context, teacher *model.Teacher) error {
	m.teachers[teacher.TeacherID] = teacher
	return nil
}

func (m *mockTeacherRepo) Delete(_ context.Context, id string) error {
	delete(m.teachers, id)
	return nil
}

func (m *mockTeacherRepo) AddAccumulatedHours(_ context.Context, id string, hours int) error {
	t, ok := m.teachers[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	t.AccumulatedHours += hours
	return nil
}

func (m *mockTeacherRepo) UpsertBurden(_ context.Context, teacherID string, month time.Time, hours int) error {
	t, ok := m.teachers[teacherID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	firstOfMonth := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := range t.Burden {
		if t.Burden[i].Month.Equal(firstOfMonth) {
			t.Burden[i].Hours += hours
			return nil
		}
	}
	t.Burden = append(t.Burden, model.TeacherBurden{
		BurdenID:  fmt.Sprintf("brd-%s-%s", teacherID, firstOfMonth.Format("2006-01")),
		TeacherID: teacherID,
		Month:     firstOfMonth,
		Hours:     hours,
	})
	return nil
}

// ── Mock AudithoriaRepository ──

type mockAudithoriaRepo struct {
	audithorias map[string]*model.Audithoria
}

func newMockAudithoriaRepo() *mockAudithoriaRepo {
	return &mockAudithoriaRepo{audithorias: make(map[string]*model.Audithoria)}
}

func (m *mockAudithoriaRepo) Create(_ context.Context, audithoria *model.Audithoria) error {
	if audithoria.AudithoriaID == "" {
		audithoria.AudithoriaID = "aud-" + audithoria.Name
	}
	m.audithorias[audithoria.AudithoriaID] = audithoria
	return nil
}

func (m *mockAudithoriaRepo) GetByID(_ context.Context, id string) (*model.Audithoria, error) {
	if a, ok := m.audithorias[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAudithoriaRepo) GetByName(_ context.Context, name string) (*model.Audithoria, error) {
	for _, a := range m.audithorias {
		if a.Name == name {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAudithoriaRepo) List(_ context.Context) ([]model.Audithoria, error) {
	var result []model.Audithoria
	for _, a := range m.audithorias {
		result = append(result, *a)
	}
	return result, nil
}

func (m *mockAudithoriaRepo) Update(_ context.Context, audithoria *model.Audithoria) error {
	m.audithorias[audithoria.AudithoriaID] = audithoria
	return nil
}

func (m *mockAudithoriaRepo) Delete(_ context.Context, id string) error {
	delete(m.audithorias, id)
	return nil
}

// ── Mock LessonTypeRepository ──

type mockLessonTypeRepo struct {
	types map[string]*model.LessonType
}

func newMockLessonTypeRepo() *mockLessonTypeRepo {
	return &mockLessonTypeRepo{types: make(map[string]*model.LessonType)}
}

func (m *mockLessonTypeRepo) Create(_ context.Context, lessonType *model.LessonType) error {
	if lessonType.TypeID == "" {
		lessonType.TypeID = "typ-" + lessonType.Name
	}
	m.types[lessonType.TypeID] = lessonType
	return nil
}

func (m *mockLessonTypeRepo) GetByID(_ context.Context, id string) (*model.LessonType, error) {
	if t, ok := m.types[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLessonTypeRepo) GetByName(_ context.Context, name string) (*model.LessonType, error) {
	for _, t := range m.types {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLessonTypeRepo) List(_ context.Context) ([]model.LessonType, error) {
	var result []model.LessonType
	for _, t := range m.types {
		result = append(result, *t)
	}
	return result, nil
}

func (m *mockLessonTypeRepo) Update(_ context.Context, lessonType *model.LessonType) error {
	m.types[lessonType.TypeID] = lessonType
	return nil
}

func (m *mockLessonTypeRepo) Delete(_ context.Context, id string) error {
	delete(m.types, id)
	return nil
}

// ── Mock ScheduleRepository ──

type mockScheduleRepo struct {
	schedules map[string]*model.Schedule
	seq       int
}

func newMockScheduleRepo() *mockScheduleRepo {
	return &mockScheduleRepo{schedules: make(map[string]*model.Schedule)}
}

// CreateWithItems повторяет контракт реального репозитория: дата
// копируется в пары, нарушение уникального индекса по (дата, номер,
// преподаватель/аудитория) возвращает gorm.ErrDuplicatedKey
func (m *mockScheduleRepo) CreateWithItems(_ context.Context, schedule *model.Schedule) error {
	if schedule.ScheduleID == "" {
		m.seq++
		schedule.ScheduleID = fmt.Sprintf("sch-%d", m.seq)
	}
	for i := range schedule.Items {
		schedule.Items[i].Date = schedule.Date
		schedule.Items[i].ScheduleID = schedule.ScheduleID
		if schedule.Items[i].ItemID == "" {
			schedule.Items[i].ItemID = fmt.Sprintf("%s-item-%d", schedule.ScheduleID, i)
		}
		for _, stored := range m.schedules {
			for _, st := range stored.Items {
				if !st.Date.Equal(schedule.Date) || st.Number != schedule.Items[i].Number {
					continue
				}
				if st.TeacherID == schedule.Items[i].TeacherID || st.AudithoriaID == schedule.Items[i].AudithoriaID {
					return gorm.ErrDuplicatedKey
				}
			}
		}
	}
	m.schedules[schedule.ScheduleID] = schedule
	return nil
}

func (m *mockScheduleRepo) GetByID(_ context.Context, id string) (*model.Schedule, error) {
	if s, ok := m.schedules[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScheduleRepo) List(_ context.Context, filter repository.ScheduleFilter) ([]model.Schedule, error) {
	var result []model.Schedule
	for _, s := range m.schedules {
		if filter.Date != nil && !s.Date.Equal(*filter.Date) {
			continue
		}
		if filter.GroupID != "" && s.GroupID != filter.GroupID {
			continue
		}
		if filter.TeacherID != "" {
			found := false
			for _, item := range s.Items {
				if item.TeacherID == filter.TeacherID {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockScheduleRepo) ListItemsByDate(_ context.Context, date time.Time) ([]model.ScheduleItem, error) {
	var result []model.ScheduleItem
	for _, s := range m.schedules {
		if !s.Date.Equal(date) {
			continue
		}
		result = append(result, s.Items...)
	}
	return result, nil
}

func (m *mockScheduleRepo) ReplaceWithItems(_ context.Context, schedule *model.Schedule) error {
	if _, ok := m.schedules[schedule.ScheduleID]; !ok {
		return gorm.ErrRecordNotFound
	}
	for i := range schedule.Items {
		schedule.Items[i].Date = schedule.Date
		schedule.Items[i].ScheduleID = schedule.ScheduleID
		if schedule.Items[i].ItemID == "" {
			schedule.Items[i].ItemID = fmt.Sprintf("%s-item-%d", schedule.ScheduleID, i)
		}
	}
	m.schedules[schedule.ScheduleID] = schedule
	return nil
}

func (m *mockScheduleRepo) Delete(_ context.Context, id string) error {
	delete(m.schedules, id)
	return nil
}

// ── сборка агрегата ──

type testRepos struct {
	user       *mockUserRepo
	role       *mockRoleRepo
	faculty    *mockFacultyRepo
	group      *mockGroupRepo
	discipline *mockDisciplineRepo
	teacher    *mockTeacherRepo
	audithoria *mockAudithoriaRepo
	lessonType *mockLessonTypeRepo
	schedule   *mockScheduleRepo
}

func newTestRepos() *testRepos {
	groups := newMockGroupRepo()
	return &testRepos{
		user:       newMockUserRepo(),
		role:       newMockRoleRepo(),
		faculty:    newMockFacultyRepo(groups),
		group:      groups,
		discipline: newMockDisciplineRepo(),
		teacher:    newMockTeacherRepo(),
		audithoria: newMockAudithoriaRepo(),
		lessonType: newMockLessonTypeRepo(),
		schedule:   newMockScheduleRepo(),
	}
}

func (r *testRepos) toRepository() *repository.Repository {
	return &repository.Repository{
		User:       r.user,
		Role:       r.role,
		Faculty:    r.faculty,
		Group:      r.group,
		Discipline: r.discipline,
		Teacher:    r.teacher,
		Audithoria: r.audithoria,
		LessonType: r.lessonType,
		Schedule:   r.schedule,
	}
}
