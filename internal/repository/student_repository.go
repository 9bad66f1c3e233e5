package repository

import (
	"context"

	"github.com/noah-isme/lms-go-api/internal/models"
	"github.com/noah-isme/lms-go-api/pkg/rowcodec"
)

var courseSchema = rowcodec.NewSchema(
	rowcodec.String("course_id"),
	rowcodec.String("name"),
	rowcodec.Int("credit"),
)

var courseWithSectionSchema = rowcodec.NewSchema(
	rowcodec.String("course_id"),
	rowcodec.String("name"),
	rowcodec.Int("credit"),
	rowcodec.String("category"),
	rowcodec.String("section_id"),
	rowcodec.String("semester"),
)

var courseDetailSchema = rowcodec.NewSchema(
	rowcodec.String("course_id"),
	rowcodec.String("name"),
	rowcodec.Int("credit"),
	rowcodec.String("category"),
)

var sectionDetailSchema = rowcodec.NewSchema(
	rowcodec.String("section_id"),
	rowcodec.String("course_id"),
	rowcodec.String("semester"),
	rowcodec.String("course_name"),
	rowcodec.Int("credit"),
	rowcodec.String("category"),
)

var sectionSchema = rowcodec.NewSchema(
	rowcodec.String("section_id"),
	rowcodec.String("course_id"),
	rowcodec.String("semester"),
)

var classmateSchema = rowcodec.NewSchema(
	rowcodec.Int("university_id"),
	rowcodec.String("first_name"),
	rowcodec.String("last_name"),
	rowcodec.String("email"),
	rowcodec.String("major"),
	rowcodec.String("current_degree"),
)

var enrolledStudentSchema = rowcodec.NewSchema(
	rowcodec.Int("university_id"),
	rowcodec.String("first_name"),
	rowcodec.String("last_name"),
	rowcodec.String("email"),
	rowcodec.Float("gpa"),
	rowcodec.Int("year"),
)

// StudentRepository reads enrollment-scoped course and roster views.
type StudentRepository struct {
	store *QueryStore
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(store *QueryStore) *StudentRepository {
	return &StudentRepository{store: store}
}

// Courses lists the courses a student is enrolled in.
func (r *StudentRepository) Courses(ctx context.Context, universityID int64) ([]models.Course, error) {
	rows, err := r.store.FetchAll(ctx, QueryStudentCourses, universityID)
	if err != nil {
		return nil, err
	}
	courses := make([]models.Course, 0, len(rows))
	for _, row := range rows {
		rec, err := rowcodec.Decode(courseSchema, row)
		if err != nil {
			return nil, err
		}
		courses = append(courses, models.Course{
			CourseID: derefString(rec.Str("course_id")),
			Name:     derefString(rec.Str("name")),
			Credit:   rec.Int("credit"),
		})
	}
	return courses, nil
}

// CoursesWithSections lists enrollment as courses grouped over their
// sections. Rows arrive flattened one-per-section; grouping keeps the
// first-seen course order.
func (r *StudentRepository) CoursesWithSections(ctx context.Context, universityID int64) ([]models.CourseWithSections, error) {
	rows, err := r.store.FetchAll(ctx, QueryCoursesWithSections, universityID)
	if err != nil {
		return nil, err
	}
	courses := make([]models.CourseWithSections, 0, len(rows))
	index := make(map[string]int, len(rows))
	for _, row := range rows {
		rec, err := rowcodec.Decode(courseWithSectionSchema, row)
		if err != nil {
			return nil, err
		}
		courseID := derefString(rec.Str("course_id"))
		pos, ok := index[courseID]
		if !ok {
			pos = len(courses)
			index[courseID] = pos
			courses = append(courses, models.CourseWithSections{
				CourseID: courseID,
				Name:     derefString(rec.Str("name")),
				Credit:   rec.Int("credit"),
				Category: rec.Str("category"),
				Sections: []models.SectionRef{},
			})
		}
		courses[pos].Sections = append(courses[pos].Sections, models.SectionRef{
			SectionID: derefString(rec.Str("section_id")),
			Semester:  derefString(rec.Str("semester")),
		})
	}
	return courses, nil
}

// CourseDetail returns the course header for an enrolled student, or nil
// when the course does not exist or the student is not enrolled.
func (r *StudentRepository) CourseDetail(ctx context.Context, universityID int64, courseID string) (*models.CourseDetail, error) {
	row, err := r.store.FetchOne(ctx, QueryCourseDetail, universityID, courseID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	rec, err := rowcodec.Decode(courseDetailSchema, row)
	if err != nil {
		return nil, err
	}
	return &models.CourseDetail{
		CourseID: derefString(rec.Str("course_id")),
		Name:     derefString(rec.Str("name")),
		Credit:   rec.Int("credit"),
		Category: rec.Str("category"),
	}, nil
}

// SectionDetail returns the joined section/course header for an enrolled
// student, or nil on a miss.
func (r *StudentRepository) SectionDetail(ctx context.Context, universityID int64, sectionID, courseID string) (*models.SectionDetail, error) {
	row, err := r.store.FetchOne(ctx, QuerySectionDetail, universityID, sectionID, courseID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	rec, err := rowcodec.Decode(sectionDetailSchema, row)
	if err != nil {
		return nil, err
	}
	return &models.SectionDetail{
		SectionID:  derefString(rec.Str("section_id")),
		CourseID:   derefString(rec.Str("course_id")),
		Semester:   derefString(rec.Str("semester")),
		CourseName: derefString(rec.Str("course_name")),
		Credit:     rec.Int("credit"),
		Category:   rec.Str("category"),
	}, nil
}

// CourseSections lists the sections of a course the student is enrolled in.
func (r *StudentRepository) CourseSections(ctx context.Context, universityID int64, courseID string) ([]models.Section, error) {
	rows, err := r.store.FetchAll(ctx, QueryStudentCourseSections, universityID, courseID)
	if err != nil {
		return nil, err
	}
	sections := make([]models.Section, 0, len(rows))
	for _, row := range rows {
		rec, err := rowcodec.Decode(sectionSchema, row)
		if err != nil {
			return nil, err
		}
		sections = append(sections, models.Section{
			SectionID: derefString(rec.Str("section_id")),
			CourseID:  derefString(rec.Str("course_id")),
			Semester:  derefString(rec.Str("semester")),
		})
	}
	return sections, nil
}

// CourseClassmates lists students sharing a course, reduced to the fields
// fellow students may see.
func (r *StudentRepository) CourseClassmates(ctx context.Context, courseID string) ([]models.ClassmateStudent, error) {
	rows, err := r.store.FetchAll(ctx, QueryCourseStudents, courseID)
	if err != nil {
		return nil, err
	}
	return decodeClassmates(rows)
}

// SectionClassmates lists students sharing a section.
func (r *StudentRepository) SectionClassmates(ctx context.Context, sectionID, courseID, semester string) ([]models.ClassmateStudent, error) {
	rows, err := r.store.FetchAll(ctx, QuerySectionStudents, sectionID, courseID, semester)
	if err != nil {
		return nil, err
	}
	return decodeClassmates(rows)
}

// EnrolledByCourse lists a course roster joined with student academics.
func (r *StudentRepository) EnrolledByCourse(ctx context.Context, courseID string) ([]models.EnrolledStudent, error) {
	rows, err := r.store.FetchAll(ctx, QueryStudentsByCourse, courseID)
	if err != nil {
		return nil, err
	}
	students := make([]models.EnrolledStudent, 0, len(rows))
	for _, row := range rows {
		rec, err := rowcodec.Decode(enrolledStudentSchema, row)
		if err != nil {
			return nil, err
		}
		students = append(students, models.EnrolledStudent{
			UniversityID: derefInt(rec.Int("university_id")),
			FirstName:    derefString(rec.Str("first_name")),
			LastName:     derefString(rec.Str("last_name")),
			Email:        derefString(rec.Str("email")),
			GPA:          rec.Float("gpa"),
			Year:         rec.Int("year"),
		})
	}
	return students, nil
}

func decodeClassmates(rows []rowcodec.Row) ([]models.ClassmateStudent, error) {
	students := make([]models.ClassmateStudent, 0, len(rows))
	for _, row := range rows {
		rec, err := rowcodec.Decode(classmateSchema, row)
		if err != nil {
			return nil, err
		}
		students = append(students, models.ClassmateStudent{
			UniversityID:  rec.Int("university_id"),
			FirstName:     rec.Str("first_name"),
			LastName:      rec.Str("last_name"),
			Email:         rec.Str("email"),
			Major:         rec.Str("major"),
			CurrentDegree: rec.Str("current_degree"),
		})
	}
	return students, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(i *int64) int64 {
	if i == nil {
		return 0
	}
	return *i
}
