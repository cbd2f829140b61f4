package services

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"github.com/phpdave11/gofpdf"

	"yatra/internal/models/response_models"
	"yatra/internal/planner"
	"yatra/pkg/utils"
)

type ItineraryDocumentServiceInterface interface {
	RenderPDF(plan response_models.TripPlan) ([]byte, string, error)
}

type ItineraryDocumentService struct{}

func NewItineraryDocumentService() ItineraryDocumentServiceInterface {
	return &ItineraryDocumentService{}
}

// RenderPDF lays the plan out on A4 pages and returns the document with a
// download file name derived from the destination.
func (s *ItineraryDocumentService) RenderPDF(plan response_models.TripPlan) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(pdfText(s)) }

	pdf.SetTitle(text(plan.Destination+" trip plan"), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 10, text(plan.Destination))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, text(plan.Dates))
	pdf.Ln(12)

	section(pdf, "Itinerary")
	for _, day := range plan.Itinerary {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, fmt.Sprintf("Day %d", day.Day))
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 11)
		for _, activity := range day.Activities {
			pdf.MultiCell(0, 6, text("- "+activity), "", "", false)
		}
		pdf.Ln(2)
	}

	// Synthesized plans only carry placeholder text in these fields.
	if !planner.IsFallback(plan) {
		paragraph(pdf, "Accommodations", text(plan.Accommodations))
		paragraph(pdf, "Transportation", text(plan.Transportation))
		paragraph(pdf, "Local Tips", text(plan.LocalTips))
	}
	paragraph(pdf, "Estimated Cost", text(plan.EstimatedCost))

	if len(plan.HotelRecommendations) > 0 {
		section(pdf, "Recommended Hotels")
		for _, hotel := range plan.HotelRecommendations {
			pdf.SetFont("Helvetica", "B", 12)
			pdf.Cell(0, 7, text(fmt.Sprintf("%s (%.1f/5)", hotel.Name, hotel.Rating)))
			pdf.Ln(7)
			pdf.SetFont("Helvetica", "", 11)
			pdf.MultiCell(0, 6, text(hotel.Description), "", "", false)
			pdf.MultiCell(0, 6, text(hotel.PriceRange), "", "", false)
			if len(hotel.Amenities) > 0 {
				pdf.MultiCell(0, 6, text("Amenities: "+strings.Join(hotel.Amenities, ", ")), "", "", false)
			}
			pdf.Ln(3)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("%w: %v", utils.ErrRenderFailure, err)
	}
	return buf.Bytes(), documentFileName(plan.Destination), nil
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 9, title)
	pdf.Ln(9)
}

func paragraph(pdf *gofpdf.Fpdf, title, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	section(pdf, title)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, body, "", "", false)
	pdf.Ln(4)
}

// pdfText swaps the rupee sign for "Rs." since the core fonts are cp1252.
func pdfText(s string) string {
	return strings.ReplaceAll(s, planner.CanonicalCurrency, "Rs.")
}

func documentFileName(destination string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(destination) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if b.Len() > 0 && !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		slug = "trip"
	}
	return slug + "-trip-plan.pdf"
}
