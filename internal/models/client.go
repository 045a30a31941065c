package models

type Client struct {
	FullName string   `json:"full_name" bson:"full_name" validate:"required"`
	Email    string   `json:"email" bson:"email" validate:"required,email"`
	Password string   `json:"password" bson:"password" validate:"required"`
	Goals    []string `json:"goals" bson:"goals"`
	Timezone *string  `json:"timezone" bson:"timezone"`
}

func (c *Client) ApplyDefaults() {
	if c.Goals == nil {
		c.Goals = []string{}
	}
}
