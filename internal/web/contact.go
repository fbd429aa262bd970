package web

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ashishmaurya/portfolio/internal/contact"
)

const (
	contactSentMessage   = "Thank you for your message. I'll get back to you soon."
	contactFailedMessage = "There was a problem sending your message. Please try again later."
)

func (s *Server) handleContactPage(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"title":    "Contact",
		"active":   "/contact",
		"email":    ContactEmail,
		"linkedin": LinkedInURL,
		"github":   GitHubURL,
	})
}

// handleContactSubmit handles the HTMX form post and answers with a
// notification fragment. Failures never leave the contact page.
func (s *Server) handleContactSubmit(c *gin.Context) {
	var form contact.Submission
	if err := c.ShouldBind(&form); err != nil {
		s.metrics.contactSubmissions.WithLabelValues("invalid").Inc()
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error":  "Please fix the highlighted fields.",
			"fields": contact.FieldErrors(err),
		})
		return
	}

	if _, err := s.contact.Submit(c.Request.Context(), form); err != nil {
		s.metrics.contactSubmissions.WithLabelValues("failed").Inc()
		s.log.Error("contact submission failed", slog.Any("err", err))
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": contactFailedMessage,
		})
		return
	}

	s.metrics.contactSubmissions.WithLabelValues("sent").Inc()
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": contactSentMessage,
	})
}

// handleAPIContact handles POST /api/contact with a JSON body.
func (s *Server) handleAPIContact(c *gin.Context) {
	var form contact.Submission
	if err := c.ShouldBindJSON(&form); err != nil {
		s.metrics.contactSubmissions.WithLabelValues("invalid").Inc()
		fields := contact.FieldErrors(err)
		if fields == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "fields": fields})
		return
	}

	receipt, err := s.contact.Submit(c.Request.Context(), form)
	if err != nil {
		s.metrics.contactSubmissions.WithLabelValues("failed").Inc()
		s.log.Error("contact submission failed", slog.Any("err", err))
		c.JSON(http.StatusBadGateway, gin.H{"error": contactFailedMessage})
		return
	}

	s.metrics.contactSubmissions.WithLabelValues("sent").Inc()
	c.JSON(http.StatusOK, gin.H{"id": receipt.ID, "message": contactSentMessage})
}
