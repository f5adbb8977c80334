package memory

import (
	"time"

	"github.com/quotable/leadintel/internal/domain"
)

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// SeedCampaigns returns the demo campaigns the store starts with.
func SeedCampaigns() []domain.Campaign {
	return []domain.Campaign{
		{
			ID:             "campaign-1",
			Name:           "European Insurance Expansion",
			Subject:        "Transform your risk management strategy",
			Content:        europeBody,
			TargetRegion:   "Europe",
			TargetIndustry: "Insurance",
			Status:         domain.CampaignActive,
			LeadsCount:     245,
			OpenRate:       28.4,
			ClickRate:      12.1,
			ResponseRate:   4.8,
			CreatedAt:      mustTime("2024-01-15T08:00:00Z"),
			UpdatedAt:      mustTime("2024-01-15T08:00:00Z"),
		},
		{
			ID:             "campaign-2",
			Name:           "APAC Leadership Outreach",
			Subject:        "Innovative solutions for Asian markets",
			Content:        apacBody,
			TargetRegion:   "Asia Pacific",
			TargetIndustry: "Insurance",
			Status:         domain.CampaignActive,
			LeadsCount:     189,
			OpenRate:       22.7,
			ClickRate:      8.9,
			ResponseRate:   3.2,
			CreatedAt:      mustTime("2024-01-12T10:30:00Z"),
			UpdatedAt:      mustTime("2024-01-12T10:30:00Z"),
		},
		{
			ID:             "campaign-3",
			Name:           "North American CRO Campaign",
			Subject:        "Advanced risk analytics platform",
			Content:        northAmericaBody,
			TargetRegion:   "North America",
			TargetIndustry: "Insurance",
			Status:         domain.CampaignPaused,
			LeadsCount:     167,
			OpenRate:       31.2,
			ClickRate:      15.6,
			ResponseRate:   6.1,
			CreatedAt:      mustTime("2024-01-08T14:15:00Z"),
			UpdatedAt:      mustTime("2024-01-10T09:45:00Z"),
		},
	}
}

const europeBody = `Dear {{name}},

As the {{title}} at {{company}}, you understand the challenges of managing risk in today's rapidly evolving insurance landscape.

Our AI-powered risk assessment platform has helped companies like yours reduce claims processing time by 35% while improving accuracy by 28%.

I'd love to schedule a brief call to discuss how we can help {{company}} streamline your risk management processes.

Would you be available for a 15-minute call next week?

Best regards,
Alex Johnson
Strategic Partnerships
Quotable`

const apacBody = `Dear {{name}},

I noticed your role as {{title}} at {{company}} and your focus on the insurance sector in {{location}}.

Our platform has been specifically designed to address the unique regulatory challenges in the APAC region, with localized compliance modules for each major market.

Several leading insurers in {{location}} have already implemented our solution, resulting in a 42% reduction in compliance-related delays.

I would appreciate the opportunity to share how these results could be replicated at {{company}}.

Respectfully,
Sarah Chen
Regional Director, APAC
Quotable`

const northAmericaBody = `Dear {{name}},

As {{company}}'s {{title}}, you're likely focused on optimizing risk assessment processes while maintaining regulatory compliance.

Our advanced analytics platform has been recognized by Gartner as a leader in the insurance risk management space, with particular strength in predictive modeling.

Companies implementing our solution have seen:
- 31% reduction in false positives
- 24% improvement in risk prediction accuracy
- 40% faster regulatory reporting

I'd like to share a case study from a company similar to {{company}} that might be relevant to your current initiatives.

Would you be interested in discussing this further?

Regards,
Michael Roberts
VP of Enterprise Solutions
Quotable`
