package domain

type Course struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Capacity    int    `json:"capacity"`
	ImageURL    string `json:"imageUrl"`
}

type InsertCourse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Capacity    int    `json:"capacity"`
	ImageURL    string `json:"imageUrl"`
}

// CourseUpdate carries a partial course. Nil fields keep their stored value.
type CourseUpdate struct {
	Name        *string
	Description *string
	Date        *string
	Capacity    *int
	ImageURL    *string
}

func (c Course) Apply(u CourseUpdate) Course {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Description != nil {
		c.Description = *u.Description
	}
	if u.Date != nil {
		c.Date = *u.Date
	}
	if u.Capacity != nil {
		c.Capacity = *u.Capacity
	}
	if u.ImageURL != nil {
		c.ImageURL = *u.ImageURL
	}

	return c
}

func (u CourseUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Date == nil && u.Capacity == nil && u.ImageURL == nil
}
