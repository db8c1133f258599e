package webapi

// SignupRequest and LoginRequest share the same credential shape.
type SignupRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest deliberately has no required binding: an absent token must
// reach the session manager so the response is 401, not a binding 400.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type CreateUserRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// Pointer fields distinguish "absent" from zero values so false and 0 pass
// validation.
type ArtistRequest struct {
	Name   string `json:"name" binding:"required"`
	Grammy *bool  `json:"grammy" binding:"required"`
}

type AlbumRequest struct {
	Name     string  `json:"name" binding:"required"`
	Year     *int    `json:"year" binding:"required"`
	ArtistID *string `json:"artistId" binding:"omitempty,uuid"`
}

type TrackRequest struct {
	Name     string  `json:"name" binding:"required"`
	ArtistID *string `json:"artistId" binding:"omitempty,uuid"`
	AlbumID  *string `json:"albumId" binding:"omitempty,uuid"`
	Duration *int    `json:"duration" binding:"required"`
}
