package space

import "errors"

var ErrInvalidCategory = errors.New("invalid space category")

type Category string

const (
	CategoryCooking  Category = "COOKING"
	CategoryParty    Category = "PARTY"
	CategoryStudy    Category = "STUDY"
	CategoryFilming  Category = "FILMING"
	CategoryDance    Category = "DANCE"
	CategoryMeeting  Category = "MEETING"
	CategoryPractice Category = "PRACTICE"
)

func NewCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryCooking, CategoryParty, CategoryStudy, CategoryFilming,
		CategoryDance, CategoryMeeting, CategoryPractice:
		return Category(s), nil
	default:
		return "", ErrInvalidCategory
	}
}

func (c Category) String() string { return string(c) }

// UseCategory is the purpose the host markets the space for, as opposed to
// Category which classifies the space itself.
type UseCategory string

const (
	UseCooking  UseCategory = "COOKING"
	UseParty    UseCategory = "PARTY"
	UseStudy    UseCategory = "STUDY"
	UseFilming  UseCategory = "FILMING"
	UseLesson   UseCategory = "LESSON"
	UseMeeting  UseCategory = "MEETING"
	UsePractice UseCategory = "PRACTICE"
)

func NewUseCategory(s string) (UseCategory, error) {
	switch UseCategory(s) {
	case UseCooking, UseParty, UseStudy, UseFilming, UseLesson, UseMeeting, UsePractice:
		return UseCategory(s), nil
	default:
		return "", ErrInvalidCategory
	}
}

func (c UseCategory) String() string { return string(c) }
