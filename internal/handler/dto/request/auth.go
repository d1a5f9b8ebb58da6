package request

import "spacehub/internal/usecase/commands"

type LoginRequest struct {
	LoginID  string `json:"login_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignupRequest struct {
	LoginID  string `json:"login_id" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Nickname string `json:"nickname" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone"`
	BirthDay string `json:"birth_day"`
	Role     string `json:"role" binding:"required,oneof=GUEST HOST"`
}

func (r SignupRequest) ToInput() (commands.SignupInput, error) {
	in := commands.SignupInput{
		LoginID:  r.LoginID,
		Password: r.Password,
		Name:     r.Name,
		Nickname: r.Nickname,
		Email:    r.Email,
		Phone:    r.Phone,
		Role:     r.Role,
	}
	if r.BirthDay != "" {
		day, err := ParseDate(r.BirthDay)
		if err != nil {
			return commands.SignupInput{}, err
		}
		in.BirthDay = &day
	}
	return in, nil
}
