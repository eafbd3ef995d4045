package types

// User is a marketplace account.
type User struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       Role    `json:"role"`
	BusinessID *string `json:"businessId,omitempty"`
}

// HasBusiness reports whether the user owns the business with id.
func (u User) HasBusiness(id string) bool {
	return u.BusinessID != nil && *u.BusinessID == id
}

// Clone returns a copy that shares no pointers with u.
func (u User) Clone() User {
	u.BusinessID = cloneString(u.BusinessID)
	return u
}

// Business is an entrepreneur's storefront.
type Business struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Owner       string  `json:"owner"`
	Faculty     string  `json:"faculty"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	Instagram   *string `json:"instagram,omitempty"`
	Rating      float64 `json:"rating"`
	TotalSales  int     `json:"totalSales"`
	JoinedDate  string  `json:"joinedDate"`
	Logo        string  `json:"logo"`
	Banner      string  `json:"banner"`
}

// Clone returns a copy that shares no pointers with b.
func (b Business) Clone() Business {
	b.Instagram = cloneString(b.Instagram)
	return b
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneBool(p *bool) *bool {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
