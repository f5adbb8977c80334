package intelligence

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Level is the High/Medium/Low scale the model reports in.
type Level string

const (
	LevelHigh   Level = "High"
	LevelMedium Level = "Medium"
	LevelLow    Level = "Low"
)

func (l Level) valid() bool {
	return l == LevelHigh || l == LevelMedium || l == LevelLow
}

type Competitor struct {
	Name          string  `json:"name"`
	MarketShare   float64 `json:"marketShare"`
	AvgOpenRate   float64 `json:"avgOpenRate"`
	MsgVolume     Level   `json:"msgVolume"`
	PrimaryRegion string  `json:"primaryRegion"`
	Threat        Level   `json:"threat"`
}

type MarketOpportunity struct {
	Region      string   `json:"region"`
	Potential   Level    `json:"potential"`
	Competition Level    `json:"competition"`
	EntryScore  float64  `json:"entryScore"`
	Insights    []string `json:"insights"`
}

type IndustryTrend struct {
	Trend     string `json:"trend"`
	Growth    string `json:"growth"`
	Relevance Level  `json:"relevance"`
	Timeframe string `json:"timeframe"`
}

// StrategicRecommendations split into 30-day and 90-day actions.
type StrategicRecommendations struct {
	Immediate []string `json:"immediate"`
	Strategic []string `json:"strategic"`
}

// Report is the document the model is asked to return.
type Report struct {
	Competitors              []Competitor             `json:"competitors"`
	MarketOpportunities      []MarketOpportunity      `json:"marketOpportunities"`
	IndustryTrends           []IndustryTrend          `json:"industryTrends"`
	StrategicRecommendations StrategicRecommendations `json:"strategicRecommendations"`
}

// Validate rejects reports with missing names, unknown levels or
// out-of-range numbers.
func (r *Report) Validate() error {
	var errs []error
	if len(r.Competitors) == 0 {
		errs = append(errs, errors.New("competitors: empty"))
	}
	for i, c := range r.Competitors {
		if strings.TrimSpace(c.Name) == "" {
			errs = append(errs, fmt.Errorf("competitors[%d].name: empty", i))
		}
		if c.MarketShare < 0 || c.MarketShare > 100 {
			errs = append(errs, fmt.Errorf("competitors[%d].marketShare: %v out of range", i, c.MarketShare))
		}
		if c.AvgOpenRate < 0 || c.AvgOpenRate > 100 {
			errs = append(errs, fmt.Errorf("competitors[%d].avgOpenRate: %v out of range", i, c.AvgOpenRate))
		}
		if !c.Threat.valid() {
			errs = append(errs, fmt.Errorf("competitors[%d].threat: %q", i, c.Threat))
		}
		if c.MsgVolume != "" && !c.MsgVolume.valid() {
			errs = append(errs, fmt.Errorf("competitors[%d].msgVolume: %q", i, c.MsgVolume))
		}
	}
	for i, o := range r.MarketOpportunities {
		if strings.TrimSpace(o.Region) == "" {
			errs = append(errs, fmt.Errorf("marketOpportunities[%d].region: empty", i))
		}
		if !o.Potential.valid() {
			errs = append(errs, fmt.Errorf("marketOpportunities[%d].potential: %q", i, o.Potential))
		}
		if o.Competition != "" && !o.Competition.valid() {
			errs = append(errs, fmt.Errorf("marketOpportunities[%d].competition: %q", i, o.Competition))
		}
		if o.EntryScore < 0 || o.EntryScore > 10 {
			errs = append(errs, fmt.Errorf("marketOpportunities[%d].entryScore: %v out of range", i, o.EntryScore))
		}
	}
	for i, t := range r.IndustryTrends {
		if strings.TrimSpace(t.Trend) == "" {
			errs = append(errs, fmt.Errorf("industryTrends[%d].trend: empty", i))
		}
		if !t.Relevance.valid() {
			errs = append(errs, fmt.Errorf("industryTrends[%d].relevance: %q", i, t.Relevance))
		}
	}
	return errors.Join(errs...)
}

// Report sources.
const (
	SourceDefault   = "default"
	SourceGenerated = "generated"
	SourceArchive   = "archive"
)

// Snapshot is a report with its provenance.
type Snapshot struct {
	Report      Report    `json:"report"`
	Source      string    `json:"source"`
	Headlines   []string  `json:"headlines,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}

// DefaultReport is shown until a report has been generated.
func DefaultReport() Report {
	return Report{
		Competitors: []Competitor{
			{Name: "InsureTech Solutions", MarketShare: 23, AvgOpenRate: 19.2, MsgVolume: LevelHigh, PrimaryRegion: "North America", Threat: LevelMedium},
			{Name: "Global Risk Partners", MarketShare: 18, AvgOpenRate: 22.7, MsgVolume: LevelMedium, PrimaryRegion: "Europe", Threat: LevelHigh},
			{Name: "Asian Insurance Hub", MarketShare: 15, AvgOpenRate: 16.8, MsgVolume: LevelLow, PrimaryRegion: "Asia Pacific", Threat: LevelLow},
		},
		MarketOpportunities: []MarketOpportunity{
			{Region: "Scandinavia", Potential: LevelHigh, Competition: LevelLow, EntryScore: 8.4,
				Insights: []string{"Strong digital adoption", "English-friendly business culture", "High insurance penetration"}},
			{Region: "Southeast Asia", Potential: LevelMedium, Competition: LevelMedium, EntryScore: 7.2,
				Insights: []string{"Growing insurance market", "Language barriers exist", "Price-sensitive buyers"}},
		},
		IndustryTrends: []IndustryTrend{
			{Trend: "AI-Powered Risk Assessment", Growth: "+145%", Relevance: LevelHigh, Timeframe: "6 months"},
			{Trend: "Parametric Insurance Products", Growth: "+89%", Relevance: LevelMedium, Timeframe: "12 months"},
		},
		StrategicRecommendations: StrategicRecommendations{
			Immediate: []string{
				"Target Scandinavian insurance executives with formal, data-driven messaging",
				"Develop AI risk assessment value propositions for Q2 campaigns",
			},
			Strategic: []string{
				"Build partnerships in Southeast Asian markets before competition intensifies",
				"Develop climate risk analytics positioning for enterprise clients",
			},
		},
	}
}
