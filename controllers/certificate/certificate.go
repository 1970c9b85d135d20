package controllers

import (
	"log"
	"time"

	"upskillr/database"
	"upskillr/middleware"
	"upskillr/models"
	assessmentModels "upskillr/models/assessment"
	courseModels "upskillr/models/course"
	"upskillr/utils"

	"github.com/gofiber/fiber/v2"
)

// IssueOrFetchCertificate lazily issues a certificate for (caller, course).
// Preconditions: a Submission exists and the enrollment has unlocked the
// certificate at 100% lesson completion. Re-requesting returns the existing
// certificate unchanged.
func IssueOrFetchCertificate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var submission assessmentModels.Submission
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&submission).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assessment submission not found", nil)
	}

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Complete the course to unlock certificate", nil)
	}
	if !enrollment.CertificateUnlocked {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Complete the course to unlock certificate", nil)
	}

	var course courseModels.Course
	database.Database.Db.Where("id = ?", courseID).First(&course)

	var instructor models.User
	database.Database.Db.Where("id = ?", course.InstructorID).First(&instructor)

	// Idempotent: an existing certificate is returned as-is, even if the
	// submission's score later differed
	var cert assessmentModels.Certificate
	err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&cert).Error
	if err != nil {
		score := submission.Percentage
		if score == 0 {
			score = 95
		}

		cert = assessmentModels.Certificate{
			CertificateID:  utils.GenerateCertificateID(),
			UserID:         userID,
			CourseID:       uint(courseID),
			InstructorName: instructor.Name,
			Score:          score,
			IssuedAt:       time.Now(),
		}
		if err := database.Database.Db.Create(&cert).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate!", nil)
		}

		go func(certID string, uID, cID uint, s int) {
			utils.NotifyCertificateIssued(certID, uID, cID, s)
			if err := utils.SendCertificateEmail(user.Email, user.Name, course.Title, certID); err != nil {
				log.Printf("Error sending certificate email to %s: %v", user.Email, err)
			}
		}(cert.CertificateID, userID, uint(courseID), score)
	}

	status := submission.Status
	if status == "" {
		status = "Distinction"
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate ready!", fiber.Map{
		"certificateId":  cert.CertificateID,
		"learnerName":    user.Name,
		"courseTitle":    course.Title,
		"instructorName": cert.InstructorName,
		"dateIssued":     cert.IssuedAt,
		"score":          cert.Score,
		"status":         status,
	})
}

// GetMyCertificate is the fetch-only variant: it never issues, and fails
// when no certificate exists yet
func GetMyCertificate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var cert assessmentModels.Certificate
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&cert).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
	}

	var course courseModels.Course
	database.Database.Db.Where("id = ?", courseID).First(&course)

	status := "Pass"
	var submission assessmentModels.Submission
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&submission).Error; err == nil && submission.Status != "" {
		status = submission.Status
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate fetched successfully!", fiber.Map{
		"certificateId":  cert.CertificateID,
		"learnerName":    user.Name,
		"courseTitle":    course.Title,
		"instructorName": cert.InstructorName,
		"dateIssued":     cert.IssuedAt,
		"score":          cert.Score,
		"status":         status,
	})
}

// VerifyCertificate is the public verification endpoint. The not-found
// message stays generic so callers cannot probe which IDs were ever issued.
func VerifyCertificate(c *fiber.Ctx) error {
	certificateID := c.Params("certificateId")
	if certificateID == "" {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Invalid certificate ID", nil)
	}

	var cert assessmentModels.Certificate
	if err := database.Database.Db.Where("certificate_id = ? AND is_deleted = ?", certificateID, false).First(&cert).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Invalid certificate ID", nil)
	}

	var learner models.User
	database.Database.Db.Where("id = ?", cert.UserID).First(&learner)

	var course courseModels.Course
	database.Database.Db.Where("id = ?", cert.CourseID).First(&course)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate verified!", fiber.Map{
		"learnerName":    learner.Name,
		"courseTitle":    course.Title,
		"instructorName": cert.InstructorName,
		"score":          cert.Score,
		"issuedAtDate":   cert.IssuedAt,
	})
}
