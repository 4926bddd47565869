package models

import "testing"

func TestTierFeatures(t *testing.T) {
	basic := TierFeatures(TierBasic)
	if basic.ChatWithCustomer || basic.GalleryUpload || basic.AllowReviews {
		t.Fatalf("basic tier unlocks features: %+v", basic)
	}

	standard := TierFeatures(TierStandard)
	if !standard.ChatWithCustomer || !standard.AllowReviews {
		t.Fatalf("standard tier missing features: %+v", standard)
	}
	if standard.OrderPayment != SettlementLong {
		t.Fatalf("standard settlement = %q", standard.OrderPayment)
	}
	if standard.Support24x7 || standard.FreeAd {
		t.Fatalf("standard tier has premium-only features: %+v", standard)
	}

	premium := TierFeatures(TierPremium)
	if premium.OrderPayment != SettlementQuick || !premium.Support24x7 || !premium.FreeAd {
		t.Fatalf("premium tier wrong: %+v", premium)
	}
}

func TestTierFeaturesFallback(t *testing.T) {
	unknown := TierFeatures(PackageTier("GOLD"))
	if unknown != TierFeatures(TierBasic) {
		t.Fatalf("unknown tier should fall back to basic, got %+v", unknown)
	}
	if ValidTier("GOLD") {
		t.Fatal("GOLD should not be a valid tier")
	}
	if !ValidTier(TierPremium) {
		t.Fatal("PREMIUM should be valid")
	}
}
