package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidChainId      = errors.New("invalid chain id")

	// request error
	ErrInvalidAddress = errors.New("Invalid address")
	ErrUnauthorized   = errors.New("unauthorized")

	// listing state
	ErrAlreadyListed    = errors.New("token already listed")
	ErrNoSuchListing    = errors.New("no such listing")
	ErrWrongListingKind = errors.New("wrong listing kind")
	ErrAuctionEnded     = errors.New("auction ended")
	ErrAuctionNotEnded  = errors.New("auction not ended")
	ErrAuctionHasBids   = errors.New("auction has bids")
	ErrAuctionsDisabled = errors.New("auctions disabled")

	// offer state
	ErrDuplicateOffer = errors.New("duplicate offer")
	ErrNoSuchOffer    = errors.New("no such offer")

	// pause state
	ErrAlreadyPaused = errors.New("already paused")
	ErrNotPaused     = errors.New("not paused")
	ErrPaused        = errors.New("marketplace paused")

	// validation
	ErrZeroAmount         = errors.New("zero amount")
	ErrZeroAddress        = errors.New("zero address")
	ErrInvalidPriceRange  = errors.New("starting price must exceed ending price")
	ErrInvalidBuyoutPrice = errors.New("buyout price must exceed starting price")
	ErrInvalidDuration    = errors.New("invalid duration")
	ErrInvalidRates       = errors.New("rates exceed 100%")
	ErrNotWhitelisted     = errors.New("token contract not whitelisted")
	ErrSelfPurchase       = errors.New("buyer is seller")

	// economic
	ErrInsufficientPayment = errors.New("insufficient payment")
	ErrBidTooLow           = errors.New("bid too low")
	ErrSupplyCapExceeded   = errors.New("supply cap exceeded")
	ErrZeroSupply          = errors.New("zero token supply")
	ErrTooManyMints        = errors.New("too many mints per transaction")

	// external collaborator
	ErrNotOwner          = errors.New("caller is not token owner")
	ErrNoSuchToken       = errors.New("no such token")
	ErrTransferRejected  = errors.New("token transfer rejected")
	ErrInsufficientFunds = errors.New("insufficient vault funds")
)
