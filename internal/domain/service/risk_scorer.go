package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vitorsantos08-ui/API/internal/domain/model"
	"github.com/vitorsantos08-ui/API/internal/domain/valueobject"
)

// RiskInput contains the record pair to be scored.
type RiskInput struct {
	User    model.UserRecord
	Product model.ProductRecord
}

// RiskOutput contains the result of risk scoring. Reasons are ordered by
// rule evaluation order; duplicates are allowed.
type RiskOutput struct {
	Score   int
	Reasons []string
}

var (
	emailPattern     = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)
	unusualNameChars = regexp.MustCompile(`[^A-Za-zÀ-ÿ \-.]`)
)

// disposableDomains are throwaway email providers that carry a fixed penalty.
var disposableDomains = map[string]bool{
	"mailinator.com":     true,
	"tempmail.com":       true,
	"10minutemail.com":   true,
	"disposablemail.com": true,
}

// categoryRisk maps product categories (lower case) to their risk weight.
// Unknown or empty categories fall back to a moderate default.
var categoryRisk = map[string]int{
	"electronics":      30,
	"jewelery":         40,
	"men's clothing":   10,
	"women's clothing": 10,
}

const defaultCategoryRisk = 15

var (
	veryHighPrice = decimal.NewFromInt(500)
	elevatedPrice = decimal.NewFromInt(100)
	moderatePrice = decimal.NewFromInt(50)
)

// RiskScorer is a domain service that evaluates integration risk for a
// (user, product) pair using rule-based logic. It is stateless and safe for
// concurrent use.
type RiskScorer struct{}

// NewRiskScorer creates a new RiskScorer instance.
func NewRiskScorer() *RiskScorer {
	return &RiskScorer{}
}

// Score applies the fixed rule set in order. The base score is 10; each rule
// is strictly additive and may append one human-readable reason. Malformed
// field values never fail, they degrade into the risk-increasing branches.
// The final score is clamped into [0,100].
func (s *RiskScorer) Score(input RiskInput) RiskOutput {
	score := 10
	reasons := make([]string, 0)

	// Rule: email syntax and domain.
	email := input.User.Email
	if !emailPattern.MatchString(email) {
		score += 40
		reasons = append(reasons, "invalid email format")
	} else {
		delta, reason := emailDomainRisk(email)
		score += delta
		reasons = append(reasons, reason)
	}

	// Rule: pseudo-identifier parity. Both branches report.
	pseudoID := valueobject.SynthesizePseudoID(int64(input.User.ID))
	if pseudoID.LastDigit()%2 == 1 {
		score += 25
		reasons = append(reasons, "pseudo identifier ends in odd digit")
	} else {
		reasons = append(reasons, "pseudo identifier has acceptable pattern")
	}

	// Rule: product category.
	if delta := lookupCategoryRisk(input.Product.Category); delta != 0 {
		score += delta
		reasons = append(reasons, fmt.Sprintf("category: %s (risk %d)", input.Product.Category, delta))
	}

	// Rule: price bands. Zero-delta band appends no reason.
	switch price := input.Product.Price; {
	case price.GreaterThanOrEqual(veryHighPrice):
		score += 35
		reasons = append(reasons, "very high price")
	case price.GreaterThanOrEqual(elevatedPrice):
		score += 20
		reasons = append(reasons, "elevated price")
	case price.GreaterThanOrEqual(moderatePrice):
		score += 10
		reasons = append(reasons, "moderate price")
	}

	// Rule: display name shape.
	if unusualNameChars.MatchString(input.User.Name) {
		score += 8
		reasons = append(reasons, "name contains unusual characters")
	}

	// Rule: name / email local-part affinity.
	if strings.Contains(email, "@") {
		local := strings.SplitN(email, "@", 2)[0]
		firstSegment := strings.ToLower(strings.SplitN(local, ".", 2)[0])
		normalizedName := strings.ToLower(strings.ReplaceAll(input.User.Name, ".", " "))
		if !strings.Contains(normalizedName, firstSegment) {
			score += 5
			reasons = append(reasons, "name and email local part do not match")
		}
	}

	// Clamp into [0,100].
	final := score
	if final > 100 {
		final = 100
	}
	if final < 0 {
		final = 0
	}
	if final != score {
		reasons = append(reasons, "score adjusted to 0-100 range")
	}

	return RiskOutput{
		Score:   final,
		Reasons: reasons,
	}
}

// emailDomainRisk evaluates the domain of a syntactically valid email.
func emailDomainRisk(email string) (int, string) {
	domain := strings.ToLower(strings.SplitN(email, "@", 2)[1])

	if disposableDomains[domain] {
		return 50, fmt.Sprintf("disposable domain (%s)", domain)
	}
	if len(domain) > 30 {
		return 10, "suspicious long domain"
	}
	return 0, "common domain"
}

func lookupCategoryRisk(category string) int {
	if delta, ok := categoryRisk[strings.ToLower(category)]; ok {
		return delta
	}
	return defaultCategoryRisk
}
