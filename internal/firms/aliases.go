package firms

// Column aliases, tried in order. Sheet headers are not contractual, so each
// logical field accepts every spelling seen in the wild.
var (
	nameCols       = []string{"name", "Name", "firm", "Firm", "Firm Name", "firm_name"}
	keyCols        = []string{"key", "Key", "slug", "Slug", "Firm Key", "firm_key"}
	modelCols      = []string{"model", "Model", "Program", "Program Type", "program"}
	maxFundingCols = []string{"maxFunding", "Max Funding", "Maximum Funding", "account_size_usd", "max_funding", "max_funding_usd"}
	fundingCols    = []string{"funding", "Funding"}
	payoutCols     = []string{"payoutSplit", "Payout", "Payout Split", "Split", "Max Split", "payout_split", "payout_split_pct", "payout_pct"}
	platformCols   = []string{"platforms", "Platforms", "platform", "Platform", "Trading Platforms"}

	evalCostCols      = []string{"evalCost", "eval_cost_usd", "Eval Cost", "eval_fee", "Evaluation Fee"}
	activationCols    = []string{"activationFee", "activation_fee_usd", "Activation Fee", "activation_fee"}
	discountValueCols = []string{"discount_pct", "discount_value", "discount_amount", "discountPct", "Discount %", "Discount"}
	discountTypeCols  = []string{"discount_type", "discountType", "Discount Type"}
	discountLabelCols = []string{"discount_label", "discountLabel", "Discount Label", "promo", "Promo"}
	discountCodeCols  = []string{"discount_code", "discountCode", "Discount Code", "code", "Code"}
	feeRefundCols     = []string{"feeRefund", "fee_refund", "Fee Refund"}

	urlCols          = []string{"url", "URL", "website", "Website", "link", "Link", "Signup URL"}
	homepageCols     = []string{"homepage", "homepage_url", "Homepage"}
	signupCols       = []string{"signup", "signup_url", "Signup"}
	affiliateURLCols = []string{"affiliateUrl", "affiliate_url", "Affiliate URL"}
	logoCols         = []string{"logo", "logo_url", "Logo"}
	notesCols        = []string{"notes", "Notes"}
	minDaysCols      = []string{"minDays", "min_days", "Min Days"}
	spreadsCols      = []string{"spreads", "Spreads"}
	newsTradingCols  = []string{"newsTrading", "news_trading", "News Trading"}
	weekendCols      = []string{"weekendHolding", "weekend_holding", "Weekend Holding"}
	trustpilotCols   = []string{"trustpilot", "Trustpilot"}
	foundedCols      = []string{"founded", "Founded"}
	capCols          = []string{"cap", "Cap", "Evaluation Cap"}
	scoreCols        = []string{"score", "Score"}
)
