package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gocode/elearning/internal/app/models"
	"github.com/gocode/elearning/internal/app/repositories"
	"github.com/gocode/elearning/internal/pkg/apperrors"
)

// memStore is an in-memory stand-in for the database shared by the fake repositories.
// Every method holds the mutex for its whole body, which mirrors the single-statement
// atomicity of the SQL implementations.
type memStore struct {
	mu          sync.Mutex
	nextID      int64
	now         time.Time
	users       map[int64]*models.User
	courses     map[int64]*models.Course
	lessons     map[int64]*models.Lesson
	enrollments map[int64]*models.Enrollment
	progress    map[[2]int64]*models.LessonProgress
}

func newMemStore() *memStore {
	return &memStore{
		now:         time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
		users:       map[int64]*models.User{},
		courses:     map[int64]*models.Course{},
		lessons:     map[int64]*models.Lesson{},
		enrollments: map[int64]*models.Enrollment{},
		progress:    map[[2]int64]*models.LessonProgress{},
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

// tick advances the clock so rows get distinct, increasing timestamps
func (m *memStore) tick() time.Time {
	m.now = m.now.Add(time.Minute)
	return m.now
}

func (m *memStore) addUser(username string, role models.Role) *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := &models.User{
		ID:        m.id(),
		Username:  username,
		Email:     username + "@example.com",
		Role:      role,
		IsActive:  true,
		CreatedAt: m.tick(),
	}
	m.users[u.ID] = u
	return u
}

func (m *memStore) addCourse(instructorID int64, title string) *models.Course {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := &models.Course{ID: m.id(), InstructorID: instructorID, Title: title, Price: "0.00", CreatedAt: m.tick()}
	m.courses[c.ID] = c
	return c
}

func (m *memStore) addLesson(courseID int64, title string, order int) *models.Lesson {
	m.mu.Lock()
	defer m.mu.Unlock()
	l := &models.Lesson{ID: m.id(), CourseID: courseID, Title: title, Content: title + " body", Order: order}
	m.lessons[l.ID] = l
	return l
}

func (m *memStore) enrollmentFor(studentID, courseID int64) *models.Enrollment {
	for _, e := range m.enrollments {
		if e.StudentID == studentID && e.CourseID == courseID {
			return e
		}
	}
	return nil
}

func (m *memStore) countEnrollments(studentID, courseID int64) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.enrollments {
		if e.StudentID == studentID && e.CourseID == courseID {
			n++
		}
	}
	return n
}

func (m *memStore) withInstructorName(c *models.Course) models.Course {
	out := *c
	if u, ok := m.users[c.InstructorID]; ok {
		out.InstructorName = u.Username
	}
	return out
}

// fakeUserRepo implements repositories.IUserRepository
type fakeUserRepo struct{ *memStore }

func (r fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return apperrors.ErrEmailAlreadyExists
		}
		if u.Username == user.Username {
			return apperrors.ErrUsernameAlreadyExists
		}
	}
	user.ID = r.id()
	user.CreatedAt = r.tick()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		out := *u
		return &out, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (r fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			out := *u
			return &out, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	return err == nil, nil
}

func (r fakeUserRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

// fakeCourseRepo implements repositories.ICourseRepository
type fakeCourseRepo struct{ *memStore }

func (r fakeCourseRepo) listing(filter func(c *models.Course) (models.EnrollmentState, bool)) []models.CourseListing {
	out := make([]models.CourseListing, 0)
	for _, c := range r.courses {
		if state, ok := filter(c); ok {
			out = append(out, models.CourseListing{Course: r.withInstructorName(c), ViewerStatus: state})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r fakeCourseRepo) List(_ context.Context, viewerID int64) ([]models.CourseListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listing(func(c *models.Course) (models.EnrollmentState, bool) {
		if e := r.enrollmentFor(viewerID, c.ID); e != nil {
			return e.Status, true
		}
		return models.EnrollmentAbsent, true
	}), nil
}

func (r fakeCourseRepo) ListByStudent(_ context.Context, studentID int64) ([]models.CourseListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listing(func(c *models.Course) (models.EnrollmentState, bool) {
		if e := r.enrollmentFor(studentID, c.ID); e != nil {
			return e.Status, true
		}
		return models.EnrollmentAbsent, false
	}), nil
}

func (r fakeCourseRepo) GetByID(_ context.Context, id int64) (*models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.courses[id]; ok {
		out := r.withInstructorName(c)
		return &out, nil
	}
	return nil, apperrors.ErrCourseNotFound
}

func (r fakeCourseRepo) Create(_ context.Context, course *models.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[course.InstructorID]; !ok {
		return apperrors.ErrUserNotFound
	}
	course.ID = r.id()
	course.CreatedAt = r.tick()
	if course.Price == "" {
		course.Price = "0.00"
	}
	stored := *course
	r.courses[course.ID] = &stored
	return nil
}

func (r fakeCourseRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(r.courses, id)
	for lid, l := range r.lessons {
		if l.CourseID == id {
			delete(r.lessons, lid)
			for key := range r.progress {
				if key[1] == lid {
					delete(r.progress, key)
				}
			}
		}
	}
	for eid, e := range r.enrollments {
		if e.CourseID == id {
			delete(r.enrollments, eid)
		}
	}
	return nil
}

func (r fakeCourseRepo) SetThumbnail(_ context.Context, id int64, thumbnail string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.courses[id]
	if !ok {
		return apperrors.ErrCourseNotFound
	}
	c.Thumbnail = &thumbnail
	return nil
}

// fakeLessonRepo implements repositories.ILessonRepository
type fakeLessonRepo struct{ *memStore }

func (r fakeLessonRepo) ListByCourse(_ context.Context, courseID, viewerID int64) ([]models.LessonWithProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.LessonWithProgress, 0)
	for _, l := range r.lessons {
		if l.CourseID != courseID {
			continue
		}
		p := r.progress[[2]int64{viewerID, l.ID}]
		out = append(out, models.LessonWithProgress{Lesson: *l, Completed: p != nil && p.Completed})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r fakeLessonRepo) GetByID(_ context.Context, id int64) (*models.Lesson, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.lessons[id]; ok {
		out := *l
		return &out, nil
	}
	return nil, apperrors.ErrLessonNotFound
}

func (r fakeLessonRepo) Create(_ context.Context, lesson *models.Lesson) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.courses[lesson.CourseID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	lesson.ID = r.id()
	stored := *lesson
	r.lessons[lesson.ID] = &stored
	return nil
}

// fakeEnrollmentRepo implements repositories.IEnrollmentRepository
type fakeEnrollmentRepo struct{ *memStore }

func (r fakeEnrollmentRepo) Request(_ context.Context, studentID, courseID int64) (*models.Enrollment, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.courses[courseID]; !ok {
		return nil, false, apperrors.ErrCourseNotFound
	}

	e := r.enrollmentFor(studentID, courseID)
	if e == nil {
		e = &models.Enrollment{ID: r.id(), StudentID: studentID, CourseID: courseID, Status: models.EnrollmentPending, EnrolledAt: r.tick()}
		r.enrollments[e.ID] = e
		out := *e
		return &out, true, nil
	}

	next := e.Status.OnRequest()
	changed := next != e.Status
	e.Status = next
	out := *e
	return &out, changed, nil
}

func (r fakeEnrollmentRepo) GetState(_ context.Context, studentID, courseID int64) (models.EnrollmentState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e := r.enrollmentFor(studentID, courseID); e != nil {
		return e.Status, nil
	}
	return models.EnrollmentAbsent, nil
}

func (r fakeEnrollmentRepo) Decide(_ context.Context, enrollmentID int64, decide repositories.DecisionFn) (*models.ManagedEnrollment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.enrollments[enrollmentID]
	if !ok {
		return nil, apperrors.ErrEnrollmentNotFound
	}
	course := r.courses[e.CourseID]
	student := r.users[e.StudentID]

	managed := &models.ManagedEnrollment{
		Enrollment:   *e,
		InstructorID: course.InstructorID,
		CourseTitle:  course.Title,
		StudentName:  student.Username,
		StudentEmail: student.Email,
	}
	next, err := decide(managed)
	if err != nil {
		return nil, err
	}
	e.Status = next
	managed.Status = next
	return managed, nil
}

func (r fakeEnrollmentRepo) ListForInstructor(_ context.Context, instructorID int64) ([]models.EnrollmentSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.EnrollmentSummary, 0)
	for _, e := range r.enrollments {
		course := r.courses[e.CourseID]
		if course.InstructorID != instructorID {
			continue
		}
		student := r.users[e.StudentID]
		s := models.EnrollmentSummary{
			Enrollment:   *e,
			StudentName:  student.Username,
			StudentEmail: student.Email,
			CourseTitle:  course.Title,
		}
		for _, l := range r.lessons {
			if l.CourseID != course.ID {
				continue
			}
			s.TotalLessons++
			if p := r.progress[[2]int64{e.StudentID, l.ID}]; p != nil && p.Completed {
				s.CompletedLessons++
			}
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EnrolledAt.After(out[j].EnrolledAt) })
	return out, nil
}

// fakeProgressRepo implements repositories.IProgressRepository
type fakeProgressRepo struct{ *memStore }

func (r fakeProgressRepo) MarkComplete(_ context.Context, studentID, lessonID int64) (*models.LessonProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.lessons[lessonID]; !ok {
		return nil, apperrors.ErrLessonNotFound
	}
	key := [2]int64{studentID, lessonID}
	p, ok := r.progress[key]
	if !ok {
		p = &models.LessonProgress{StudentID: studentID, LessonID: lessonID}
		r.progress[key] = p
	}
	p.Completed = true
	p.UpdatedAt = r.tick()
	out := *p
	return &out, nil
}

func (m *memStore) progressRows(studentID, lessonID int64) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.progress[[2]int64{studentID, lessonID}]; ok {
		return 1
	}
	return 0
}

// sentEmail records a notification
type sentEmail struct {
	To      string
	Kind    string
	Course  string
	Student string
	Status  string
}

// fakeNotifier implements email.EmailService
type fakeNotifier struct {
	mu   sync.Mutex
	sent []sentEmail
	err  error
}

func (n *fakeNotifier) SendEnrollmentRequestedEmail(toEmail, _, studentName, courseTitle string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentEmail{To: toEmail, Kind: "requested", Course: courseTitle, Student: studentName})
	return n.err
}

func (n *fakeNotifier) SendEnrollmentDecisionEmail(toEmail, _, courseTitle, status string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentEmail{To: toEmail, Kind: "decision", Course: courseTitle, Status: status})
	return n.err
}

func (n *fakeNotifier) emails() []sentEmail {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]sentEmail(nil), n.sent...)
}

var (
	_ repositories.IUserRepository       = fakeUserRepo{}
	_ repositories.ICourseRepository     = fakeCourseRepo{}
	_ repositories.ILessonRepository     = fakeLessonRepo{}
	_ repositories.IEnrollmentRepository = fakeEnrollmentRepo{}
	_ repositories.IProgressRepository   = fakeProgressRepo{}
)
