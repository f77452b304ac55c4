package contract

import "style-match-be/internal/entity"

type CredentialRepository interface {
	Save(credential *entity.PinterestCredential)
	// Active returns the current credential unless it is missing or expired.
	Active() (*entity.PinterestCredential, bool)
	Clear()
}
