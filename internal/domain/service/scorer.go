package service

// Scorer defines the interface for risk scoring strategies over a
// (user, product) record pair.
type Scorer interface {
	Score(input RiskInput) RiskOutput
}
