package models

type Discount struct {
	Percent *float64 `json:"percent"`
	Amount  *float64 `json:"amount"`
	Label   *string  `json:"label,omitempty"`
	Code    *string  `json:"code,omitempty"`
}

type Pricing struct {
	EvalCost      *float64  `json:"evalCost"`
	ActivationFee *float64  `json:"activationFee"`
	Discount      *Discount `json:"discount"`
}

type Firm struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Model       []string `json:"model"`
	MaxFunding  *float64 `json:"maxFunding"`
	PayoutSplit *float64 `json:"payoutSplit"`
	Platforms   []string `json:"platforms"`
	Pricing     Pricing  `json:"pricing"`
	FeeRefund   *bool    `json:"feeRefund"`

	Homepage       *string  `json:"homepage"`
	Signup         *string  `json:"signup"`
	AffiliateURL   *string  `json:"affiliateUrl,omitempty"`
	Logo           *string  `json:"logo"`
	Notes          *string  `json:"notes,omitempty"`
	MinDays        *int     `json:"minDays"`
	Spreads        *string  `json:"spreads,omitempty"`
	NewsTrading    *bool    `json:"newsTrading"`
	WeekendHolding *bool    `json:"weekendHolding"`
	Trustpilot     *float64 `json:"trustpilot"`
	Founded        *int     `json:"founded,omitempty"`
	Cap            *float64 `json:"cap"`
	Score          *float64 `json:"score"`
}

// RowIssue records the advisory problems found for one sheet row. Row is the
// 1-based spreadsheet line number, header included.
type RowIssue struct {
	Row      int      `json:"row"`
	Key      string   `json:"key,omitempty"`
	Problems []string `json:"problems"`
}
