package domain

// Table is a mongo collection name.
type Table string

const (
	TableListings             Table = "listings"
	TableOffers               Table = "offers"
	TableCounters             Table = "counters"
	TablePauseMetrics         Table = "pause_metrics"
	TableRewardLedgers        Table = "reward_ledgers"
	TableRewardTokenSnapshots Table = "reward_token_snapshots"
	TableRewardBalances       Table = "reward_balances"
	TableTokens               Table = "tokens"
	TableVaultBalances        Table = "vault_balances"
	TableEvents               Table = "events"
	TableMarketplaceParams    Table = "marketplace_params"
)
