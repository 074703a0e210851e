package dealflow

// Well-known stage metadata keys. stage_metadata is an open map; these
// are the keys the workflow itself reads or that clients are expected
// to set during the named stage.
const (
	MetaBrandSigned   = "brand_signed"   // signing
	MetaCreatorSigned = "creator_signed" // signing
	MetaContractURL   = "contract_url"   // signing

	MetaTrackingNumber  = "tracking_number"  // logistics
	MetaCarrier         = "carrier"          // logistics
	MetaShippingAddress = "shipping_address" // logistics

	MetaDraftURL = "draft_url" // review
	MetaFeedback = "feedback"  // review -> production revision

	MetaLiveURL    = "live_url"    // approved
	MetaGoLiveAt   = "go_live_at"  // approved
	MetaPaymentRef = "payment_ref" // payment_release
)

// MergeMetadata shallow-merges patch into existing and returns the
// result as a fresh map. Keys absent from the patch are left untouched;
// neither input is mutated.
func MergeMetadata(existing, patch map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(existing)+len(patch))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range patch {
		merged[k] = v
	}
	return merged
}

// flagSet reports whether a metadata key holds a truthy flag. Clients
// send both JSON booleans and "true" strings.
func flagSet(meta map[string]interface{}, key string) bool {
	switch v := meta[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}

// SignaturesComplete reports whether both parties have signed.
func SignaturesComplete(meta map[string]interface{}) bool {
	return flagSet(meta, MetaBrandSigned) && flagSet(meta, MetaCreatorSigned)
}
