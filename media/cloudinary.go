package media

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const ProductFolder = "afElegance/products"

// Image is a hosted image reference.
type Image struct {
	URL      string
	PublicID string
}

// CloudinaryUploader pushes base64 data URIs to a Cloudinary folder.
type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryUploader(cloudinaryURL, folder string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &CloudinaryUploader{cld: cld, folder: folder}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, file string) (*Image, error) {
	res, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: u.folder})
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}
	if res.Error.Message != "" {
		return nil, errors.New("upload image: " + res.Error.Message)
	}
	return &Image{URL: res.SecureURL, PublicID: res.PublicID}, nil
}
