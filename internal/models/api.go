package models

type FirmsMeta struct {
	Count        int          `json:"count"`
	SheetColumns []string     `json:"sheetColumns"`
	ParseErrors  []ParseError `json:"parseErrors"`
	Issues       []RowIssue   `json:"issues"`
}

type FirmsResponse struct {
	Firms []Firm     `json:"firms"`
	Meta  *FirmsMeta `json:"meta,omitempty"`
}

type CostResult struct {
	EvalAfterDiscount   float64 `json:"evalAfterDiscount"`
	TrueCost            float64 `json:"trueCost"`
	TrueCostAfterRefund float64 `json:"trueCostAfterRefund"`
}

type FirmDetailResponse struct {
	Firm       Firm       `json:"firm"`
	Costs      CostResult `json:"costs"`
	SignupLink string     `json:"signupLink"`
	Related    []Firm     `json:"related"`
	Live       bool       `json:"live"`
}

type DirectoryStatistics struct {
	Count                int            `json:"count"`
	LowestPayoutSplit    *float64       `json:"lowestPayoutSplit"`
	AveragePayoutSplit   *float64       `json:"averagePayoutSplit"`
	HighestPayoutSplit   *float64       `json:"highestPayoutSplit"`
	CheapestTrueCost     *float64       `json:"cheapestTrueCost"`
	CheapestFirms        []string       `json:"cheapestFirms"`
	PlatformDistribution map[string]int `json:"platformDistribution"`
	ModelDistribution    map[string]int `json:"modelDistribution"`
	WithDiscount         int            `json:"withDiscount"`
}

type StatsResponse struct {
	Statistics *DirectoryStatistics `json:"statistics"`
	Live       bool                 `json:"live"`
}

// Redirect is one entry of the outbound link table.
type Redirect struct {
	Slug        string `json:"slug"`
	Destination string `json:"destination"`
	Source      string `json:"source"`
}
