package dto

import (
	"math"
	"mime/multipart"
	"time"

	"tavola/internal/domains/review/model"
)

type CreateReviewRequest struct {
	BookingID string  `json:"booking_id" validate:"required"`
	Rating    float64 `json:"rating"     validate:"gte=1,lte=5"`
	Comment   string  `json:"comment"    validate:"required,max=1000"`
	Photo     string  `json:"photo"      validate:"omitempty,url,max=500"`
}

type ReviewResponse struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	Name      string    `json:"name"`
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment"`
	Photo     string    `json:"photo,omitempty"`
	Moderated bool      `json:"moderated"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *ReviewResponse) FromModel(m model.Review) {
	r.ID = m.ID
	r.BookingID = m.BookingID
	r.Name = m.Name
	r.Rating = m.Rating
	r.Comment = m.Comment
	r.Photo = m.Photo
	r.Moderated = m.Moderated
	r.CreatedAt = m.CreatedAt
}

type GetReviewsResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
	Average float64          `json:"average"`
	Count   int              `json:"count"`
}

// FromModels rounds the average to one decimal place.
func (r *GetReviewsResponse) FromModels(models []model.Review, summary model.Summary) {
	r.Average = math.Round(summary.Average*10) / 10
	r.Count = summary.Count

	r.Reviews = make([]ReviewResponse, len(models))
	for i, mod := range models {
		r.Reviews[i].FromModel(mod)
	}
}

type UploadPhotoRequest struct {
	Photo     *multipart.FileHeader `json:"photo" swaggerignore:"true" validate:"required"`
	PhotoFile multipart.File        `json:"-"`
}

type UploadPhotoResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (r *UploadPhotoResponse) FromModel(url, fileName string) {
	r.URL = url
	r.FileName = fileName
}
