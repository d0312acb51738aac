package domain

// Client is a barbershop customer identified by CPF.
type Client struct {
	ID    int64
	CPF   string
	Name  string
	Phone string
}

// ClientPatch carries the fields of a partial client update; nil fields are left untouched.
type ClientPatch struct {
	CPF   *string
	Name  *string
	Phone *string
}

// Apply copies the set fields onto c.
func (p ClientPatch) Apply(c *Client) {
	if p.CPF != nil {
		c.CPF = *p.CPF
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
}

// Fields names the fields the patch sets.
func (p ClientPatch) Fields() []string {
	var out []string
	if p.CPF != nil {
		out = append(out, "cpf")
	}
	if p.Name != nil {
		out = append(out, "name")
	}
	if p.Phone != nil {
		out = append(out, "phone")
	}
	return out
}
