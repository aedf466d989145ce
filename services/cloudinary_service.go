package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryService(cloudName, apiKey, apiSecret string) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryService{cld: cld}, nil
}

// UploadImage uploads a single image to Cloudinary and returns the secure URL
func (s *CloudinaryService) UploadImage(ctx context.Context, file multipart.File, filename string, folder string) (string, error) {
	// Use pointer booleans as required by the cloudinary SDK
	unique := true
	overwrite := false
	uploadParams := uploader.UploadParams{
		Folder:         folder,
		ResourceType:   "image",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	}

	// Only set PublicID if filename is provided
	if filename != "" {
		uploadParams.PublicID = filename
	}

	result, err := s.cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	// Ensure we return the secure URL
	if result.SecureURL == "" {
		return "", fmt.Errorf("upload successful but no URL returned")
	}

	return result.SecureURL, nil
}

// UploadListingImages uploads all screenshots for a listing and returns their URLs.
// Images live under listings/<listingID> so the whole folder can be removed
// when the listing is deleted.
func (s *CloudinaryService) UploadListingImages(ctx context.Context, files []*multipart.FileHeader, listingID string) ([]string, error) {
	folder := "listings/" + listingID

	var urls []string
	for i, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open file %s: %w", fileHeader.Filename, err)
		}
		defer file.Close()

		filename := fmt.Sprintf("%s_%d", fileHeader.Filename, i)
		url, err := s.UploadImage(ctx, file, filename, folder)
		if err != nil {
			return nil, err
		}

		urls = append(urls, url)
	}

	return urls, nil
}

// DeleteListingImages deletes every screenshot of a listing from Cloudinary
func (s *CloudinaryService) DeleteListingImages(ctx context.Context, listingID string) error {
	folder := "listings/" + listingID

	result, err := s.cld.Admin.DeleteAssetsByPrefix(ctx, admin.DeleteAssetsByPrefixParams{
		Prefix: api.CldAPIArray{folder},
	})
	if err != nil {
		return fmt.Errorf("failed to delete assets in folder %s: %w", folder, err)
	}

	if result != nil {
		fmt.Printf("Deleted assets from folder %s\n", folder)
	}

	// Cloudinary usually auto-removes empty folders; try anyway and ignore errors
	s.cld.Admin.DeleteFolder(ctx, admin.DeleteFolderParams{
		Folder: folder,
	})

	return nil
}
