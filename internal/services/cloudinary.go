package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"sync"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// Profil appliqué à chaque upload : bornage 500x500 + qualité auto.
// Le même profil vaut pour la création et la mise à jour d'une œuvre
// (une seule politique, voir DESIGN.md).
const incomingTransformation = "c_limit,w_500,h_500/q_auto"

// Uploader : envoi d'un lot d'images vers l'hébergeur, URLs sécurisées
// rendues dans l'ordre d'entrée.
type Uploader interface {
	UploadImages(ctx context.Context, folder string, files []*multipart.FileHeader) ([]string, error)
}

type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryUploader() (*CloudinaryUploader, error) {
	url := os.Getenv("CLOUDINARY_URL")
	if url == "" {
		return nil, fmt.Errorf("CLOUDINARY_URL manquant")
	}

	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("initialisation Cloudinary: %w", err)
	}
	return &CloudinaryUploader{cld: cld}, nil
}

// UploadImages envoie tous les fichiers en parallèle et joint les
// résultats. La première erreur rencontrée fait échouer le lot entier :
// pas d'URL partielle persistée sur une œuvre.
func (u *CloudinaryUploader) UploadImages(ctx context.Context, folder string, files []*multipart.FileHeader) ([]string, error) {
	return uploadAll(files, func(fh *multipart.FileHeader) (string, error) {
		return u.uploadOne(ctx, folder, fh)
	})
}

func uploadAll(files []*multipart.FileHeader, upload func(*multipart.FileHeader) (string, error)) ([]string, error) {
	urls := make([]string, len(files))
	errs := make([]error, len(files))

	var wg sync.WaitGroup
	for i, fh := range files {
		wg.Add(1)
		go func(i int, fh *multipart.FileHeader) {
			defer wg.Done()
			urls[i], errs[i] = upload(fh)
		}(i, fh)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return urls, nil
}

func (u *CloudinaryUploader) uploadOne(ctx context.Context, folder string, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("ouverture de %s: %w", fh.Filename, err)
	}
	defer f.Close()

	res, err := u.cld.Upload.Upload(ctx, f, uploader.UploadParams{
		PublicID:       fmt.Sprintf("%s/%s", folder, uuid.NewString()),
		Folder:         folder,
		ResourceType:   "image",
		Transformation: incomingTransformation,
	})
	if err != nil {
		return "", fmt.Errorf("upload Cloudinary de %s: %w", fh.Filename, err)
	}

	if res.SecureURL != "" {
		return res.SecureURL, nil
	}
	return res.URL, nil
}
