// Package reports generates the audit artifacts produced when a master admin
// approves a winner: the full offer book as CSV and a JSON audit summary
// with the approval timeline.
package reports

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	model "freightbid/internal/models"
	"freightbid/internal/scoring"
)

// Artifact is one generated audit file.
type Artifact struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Generator is the report collaborator invoked synchronously at approval
// time; the resulting artifacts are handed to the notifier as attachments.
type Generator interface {
	GenerateAuditArtifacts(auction model.Auction, offers []model.Offer, winner *model.Offer, rankings scoring.Rankings) ([]Artifact, error)
}

// FileGenerator writes artifacts to a local directory.
type FileGenerator struct {
	dir string
}

// NewFileGenerator creates a generator writing into dir (created on demand)
func NewFileGenerator(dir string) *FileGenerator {
	return &FileGenerator{dir: dir}
}

type auditSummary struct {
	Code            string           `json:"code"`
	Title           string           `json:"title"`
	Plate           string           `json:"plate,omitempty"`
	TransportType   string           `json:"transport_type,omitempty"`
	Origin          string           `json:"origin"`
	Destination     string           `json:"destination"`
	Deadline        time.Time        `json:"deadline"`
	CreatedStamp    *model.Stamp     `json:"created_stamp,omitempty"`
	ClosedStamp     *model.Stamp     `json:"closed_stamp,omitempty"`
	SelectionStamp  *model.Stamp     `json:"selection_stamp,omitempty"`
	ApprovalStamp   *model.Stamp     `json:"approval_stamp,omitempty"`
	SelectionNote   string           `json:"selection_note,omitempty"`
	Winner          *model.Offer     `json:"winner,omitempty"`
	Rankings        scoring.Rankings `json:"rankings"`
	OfferCount      int              `json:"offer_count"`
	GeneratedAtUTC  time.Time        `json:"generated_at_utc"`
}

// GenerateAuditArtifacts writes the offer-book CSV and the JSON summary.
// Offers appear in the CSV in submission order regardless of how the caller
// ordered them.
func (g *FileGenerator) GenerateAuditArtifacts(auction model.Auction, offers []model.Offer, winner *model.Offer, rankings scoring.Rankings) ([]Artifact, error) {
	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return nil, fmt.Errorf("reports: create dir %s: %w", g.dir, err)
	}

	csvArtifact, err := g.writeOfferBook(auction, offers)
	if err != nil {
		return nil, err
	}
	jsonArtifact, err := g.writeSummary(auction, offers, winner, rankings)
	if err != nil {
		return nil, err
	}
	return []Artifact{csvArtifact, jsonArtifact}, nil
}

func (g *FileGenerator) writeOfferBook(auction model.Auction, offers []model.Offer) (Artifact, error) {
	path := filepath.Join(g.dir, fmt.Sprintf("AUDIT_%s.csv", auction.Code))
	file, err := os.Create(path)
	if err != nil {
		return Artifact{}, fmt.Errorf("reports: create %s: %w", path, err)
	}
	defer file.Close()

	ordered := append([]model.Offer(nil), offers...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	w := csv.NewWriter(file)
	w.Comma = ';'
	if err := w.Write([]string{"submitted_at", "carrier", "price", "lead_time_days"}); err != nil {
		return Artifact{}, fmt.Errorf("reports: write header: %w", err)
	}
	for _, offer := range ordered {
		record := []string{
			offer.CreatedAt.UTC().Format(time.RFC3339),
			offer.CarrierName,
			offer.Price.StringFixed(2),
			fmt.Sprintf("%d", offer.LeadTimeDays),
		}
		if err := w.Write(record); err != nil {
			return Artifact{}, fmt.Errorf("reports: write offer row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return Artifact{}, fmt.Errorf("reports: flush %s: %w", path, err)
	}
	return Artifact{Name: filepath.Base(path), Path: path}, nil
}

func (g *FileGenerator) writeSummary(auction model.Auction, offers []model.Offer, winner *model.Offer, rankings scoring.Rankings) (Artifact, error) {
	path := filepath.Join(g.dir, fmt.Sprintf("AUDIT_%s.json", auction.Code))

	summary := auditSummary{
		Code:           auction.Code,
		Title:          auction.Title,
		Plate:          auction.Plate,
		TransportType:  auction.TransportType,
		Origin:         auction.Origin,
		Destination:    auction.Destination,
		Deadline:       auction.Deadline,
		CreatedStamp:   auction.CreatedStamp,
		ClosedStamp:    auction.ClosedStamp,
		SelectionStamp: auction.SelectionStamp,
		ApprovalStamp:  auction.ApprovalStamp,
		SelectionNote:  auction.SelectionNote,
		Winner:         winner,
		Rankings:       rankings,
		OfferCount:     len(offers),
		GeneratedAtUTC: time.Now().UTC(),
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return Artifact{}, fmt.Errorf("reports: marshal summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return Artifact{}, fmt.Errorf("reports: write %s: %w", path, err)
	}
	return Artifact{Name: filepath.Base(path), Path: path}, nil
}
