package models

// PackageTier is a vendor's subscription level on the marketplace.
type PackageTier string

const (
	TierBasic    PackageTier = "BASIC"
	TierStandard PackageTier = "STANDARD"
	TierPremium  PackageTier = "PREMIUM"
)

// SettlementClass describes how order payments settle for a tier.
type SettlementClass string

const (
	SettlementNone  SettlementClass = ""
	SettlementLong  SettlementClass = "long_settlement"
	SettlementQuick SettlementClass = "quick_settlement"
)

// FeatureSet lists the capabilities a vendor's tier unlocks.
type FeatureSet struct {
	CanContact       bool
	GoogleMap        bool
	ReviewAndRating  bool
	AllowReviews     bool
	ChatWithCustomer bool
	FAQ              bool
	Analytics        bool
	OrderPayment     SettlementClass
	GalleryUpload    bool
	SocialLinks      bool
	Support24x7      bool
	FreeAd           bool
}

var tierFeatures = map[PackageTier]FeatureSet{
	TierBasic: {},
	TierStandard: {
		CanContact:       true,
		GoogleMap:        true,
		ReviewAndRating:  true,
		AllowReviews:     true,
		ChatWithCustomer: true,
		FAQ:              true,
		Analytics:        true,
		OrderPayment:     SettlementLong,
		GalleryUpload:    true,
		SocialLinks:      true,
	},
	TierPremium: {
		CanContact:       true,
		GoogleMap:        true,
		ReviewAndRating:  true,
		AllowReviews:     true,
		ChatWithCustomer: true,
		FAQ:              true,
		Analytics:        true,
		OrderPayment:     SettlementQuick,
		GalleryUpload:    true,
		SocialLinks:      true,
		Support24x7:      true,
		FreeAd:           true,
	},
}

// ValidTier reports whether t is one of the known subscription tiers.
func ValidTier(t PackageTier) bool {
	_, ok := tierFeatures[t]
	return ok
}

// TierFeatures returns the feature set for a tier. Unknown or empty tiers fall
// back to BASIC.
func TierFeatures(t PackageTier) FeatureSet {
	fs, ok := tierFeatures[t]
	if !ok {
		return tierFeatures[TierBasic]
	}
	return fs
}
