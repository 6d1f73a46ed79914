// internal/domain/storefront/entity.go
package storefront

// OrderTypesEnabled flags which fulfillment modes the business accepts
type OrderTypesEnabled struct {
	Mesa     bool `json:"mesa"`
	Pickup   bool `json:"pickup"`
	Delivery bool `json:"delivery"`
}

// ScheduleDay represents one weekday's open interval in "HH:MM" local time
type ScheduleDay struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ScheduleConfig maps weekday index ("0"=Sunday .. "6"=Saturday) to an
// open interval. A nil or absent entry means closed that day.
type ScheduleConfig struct {
	Timezone string                  `json:"timezone"`
	Days     map[string]*ScheduleDay `json:"days"`
}

// Config represents the business configuration document. Loaded once at
// startup, shared read-only with every other component.
type Config struct {
	BusinessName     string            `json:"businessName"`
	WhatsAppNumber   string            `json:"whatsappNumber"`
	Currency         string            `json:"currency"`
	DeliveryFee      float64           `json:"deliveryFee,omitempty"`
	MinOrder         *float64          `json:"minOrder,omitempty"`
	HoursText        string            `json:"hoursText"`
	AddressText      string            `json:"addressText,omitempty"`
	LockTableFromURL *bool             `json:"lockTableFromUrl,omitempty"`
	OrderTypes       OrderTypesEnabled `json:"orderTypesEnabled"`
	Schedule         *ScheduleConfig   `json:"schedule,omitempty"`
}

// LockTable reports whether an externally supplied table identity locks
// the table-number field. Defaults to true when the flag is absent.
func (c Config) LockTable() bool {
	return c.LockTableFromURL == nil || *c.LockTableFromURL
}
