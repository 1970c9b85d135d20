package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"upskillr/config"
	"upskillr/database"
	"upskillr/models"
	assessmentModels "upskillr/models/assessment"
	courseModels "upskillr/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var certificateIDPattern = regexp.MustCompile(`^USK-\d{4}-[0-9A-Z]{6}$`)

type envelope struct {
	Status  bool                   `json:"status"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// The issue path fires webhook/email goroutines that read AppConfig
	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.RunMigrations(db))
	database.Database = database.DbInstance{Db: db}
	return db
}

type fixture struct {
	learner    models.User
	instructor models.User
	course     courseModels.Course
}

func seedCourse(t *testing.T, db *gorm.DB) fixture {
	t.Helper()

	f := fixture{
		learner:    models.User{Name: "Asha Rao", Email: "asha@example.com", Role: "LEARNER"},
		instructor: models.User{Name: "Vikram Patel", Email: "vikram@example.com", Role: "INSTRUCTOR"},
	}
	require.NoError(t, db.Create(&f.learner).Error)
	require.NoError(t, db.Create(&f.instructor).Error)

	f.course = courseModels.Course{Title: "Go Fundamentals", InstructorID: f.instructor.ID, Status: "ACTIVE", IsPublished: true}
	require.NoError(t, db.Create(&f.course).Error)
	return f
}

func seedSubmission(t *testing.T, db *gorm.DB, f fixture, percentage int, status string) {
	t.Helper()
	require.NoError(t, db.Create(&assessmentModels.Submission{
		UserID:     f.learner.ID,
		CourseID:   f.course.ID,
		Answers:    []byte(`{}`),
		Percentage: percentage,
		Status:     status,
	}).Error)
}

func seedEnrollment(t *testing.T, db *gorm.DB, f fixture, unlocked bool) {
	t.Helper()
	require.NoError(t, db.Create(&courseModels.Enrollment{
		UserID:              f.learner.ID,
		CourseID:            f.course.ID,
		Status:              "COMPLETED",
		CertificateUnlocked: unlocked,
	}).Error)
}

// performAs runs a handler with the auth locals a logged-in learner would have
func performAs(t *testing.T, userID uint, courseID uint, handler fiber.Handler) (int, envelope) {
	t.Helper()

	app := fiber.New()
	app.Get("/test", func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		c.Locals("courseID", int(courseID))
		return handler(c)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/test", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(body, &env))
	return resp.StatusCode, env
}

func performVerify(t *testing.T, certificateID string) (int, envelope) {
	t.Helper()

	app := fiber.New()
	app.Get("/certificates/:certificateId", VerifyCertificate)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/certificates/"+certificateID, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(body, &env))
	return resp.StatusCode, env
}

func TestIssueRequiresSubmission(t *testing.T) {
	db := setupTestDB(t)
	f := seedCourse(t, db)
	seedEnrollment(t, db, f, true)

	code, env := performAs(t, f.learner.ID, f.course.ID, IssueOrFetchCertificate)
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.Equal(t, "Assessment submission not found", env.Message)
}

func TestIssueRequiresUnlockedCertificate(t *testing.T) {
	db := setupTestDB(t)
	f := seedCourse(t, db)
	seedSubmission(t, db, f, 100, "PASS")

	// Not enrolled at all
	code, env := performAs(t, f.learner.ID, f.course.ID, IssueOrFetchCertificate)
	assert.Equal(t, fiber.StatusForbidden, code)
	assert.Equal(t, "Complete the course to unlock certificate", env.Message)

	// Enrolled but lessons not finished
	seedEnrollment(t, db, f, false)
	code, env = performAs(t, f.learner.ID, f.course.ID, IssueOrFetchCertificate)
	assert.Equal(t, fiber.StatusForbidden, code)
	assert.Equal(t, "Complete the course to unlock certificate", env.Message)
}

func TestIssueCertificate(t *testing.T) {
	db := setupTestDB(t)
	f := seedCourse(t, db)
	seedSubmission(t, db, f, 100, "PASS")
	seedEnrollment(t, db, f, true)

	code, env := performAs(t, f.learner.ID, f.course.ID, IssueOrFetchCertificate)
	require.Equal(t, fiber.StatusOK, code)
	assert.True(t, env.Status)

	certID, _ := env.Data["certificateId"].(string)
	assert.Regexp(t, certificateIDPattern, certID)
	assert.Equal(t, "Asha Rao", env.Data["learnerName"])
	assert.Equal(t, "Go Fundamentals", env.Data["courseTitle"])
	assert.Equal(t, "Vikram Patel", env.Data["instructorName"])
	assert.Equal(t, float64(100), env.Data["score"])
	assert.Equal(t, "PASS", env.Data["status"])
}

func TestIssueIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	f := seedCourse(t, db)
	seedSubmission(t, db, f, 100, "PASS")
	seedEnrollment(t, db, f, true)

	code, first := performAs(t, f.learner.ID, f.course.ID, IssueOrFetchCertificate)
	require.Equal(t, fiber.StatusOK, code)

	code, second := performAs(t, f.learner.ID, f.course.ID, IssueOrFetchCertificate)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, first.Data["certificateId"], second.Data["certificateId"])

	var count int64
	require.NoError(t, db.Model(&assessmentModels.Certificate{}).
		Where("user_id = ? AND course_id = ?", f.learner.ID, f.course.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestIssueLegacySubmissionDefaults(t *testing.T) {
	db := setupTestDB(t)
	f := seedCourse(t, db)
	// Rows migrated from the old system carry no percentage or status
	seedSubmission(t, db, f, 0, "")
	seedEnrollment(t, db, f, true)

	code, env := performAs(t, f.learner.ID, f.course.ID, IssueOrFetchCertificate)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, float64(95), env.Data["score"])
	assert.Equal(t, "Distinction", env.Data["status"])
}

func TestGetMyCertificateBeforeIssuance(t *testing.T) {
	db := setupTestDB(t)
	f := seedCourse(t, db)

	code, env := performAs(t, f.learner.ID, f.course.ID, GetMyCertificate)
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.Equal(t, "Certificate not found!", env.Message)
}

func TestGetMyCertificateAfterIssuance(t *testing.T) {
	db := setupTestDB(t)
	f := seedCourse(t, db)
	seedSubmission(t, db, f, 83, "PASS")
	seedEnrollment(t, db, f, true)

	code, issued := performAs(t, f.learner.ID, f.course.ID, IssueOrFetchCertificate)
	require.Equal(t, fiber.StatusOK, code)

	code, env := performAs(t, f.learner.ID, f.course.ID, GetMyCertificate)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, issued.Data["certificateId"], env.Data["certificateId"])
	assert.Equal(t, float64(83), env.Data["score"])
	assert.Equal(t, "PASS", env.Data["status"])
}

func TestVerifyCertificate(t *testing.T) {
	db := setupTestDB(t)
	f := seedCourse(t, db)
	seedSubmission(t, db, f, 100, "PASS")
	seedEnrollment(t, db, f, true)

	code, issued := performAs(t, f.learner.ID, f.course.ID, IssueOrFetchCertificate)
	require.Equal(t, fiber.StatusOK, code)
	certID := issued.Data["certificateId"].(string)

	code, env := performVerify(t, certID)
	require.Equal(t, fiber.StatusOK, code)
	assert.True(t, env.Status)
	assert.Equal(t, "Asha Rao", env.Data["learnerName"])
	assert.Equal(t, "Go Fundamentals", env.Data["courseTitle"])
	assert.Equal(t, "Vikram Patel", env.Data["instructorName"])
	assert.Equal(t, float64(100), env.Data["score"])
}

func TestVerifyUnknownCertificateIsGeneric(t *testing.T) {
	setupTestDB(t)

	code, env := performVerify(t, "USK-2024-ZZZZZZ")
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.False(t, env.Status)
	assert.Equal(t, "Invalid certificate ID", env.Message)
}
