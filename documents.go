package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-collection-boot/async"
	"github.com/SaiNageswarS/go-collection-boot/linq"
	"github.com/docreason/client/docs"
	"github.com/docreason/client/schema"
	"go.uber.org/zap"
)

const documentsPath = "/api/documents"

// UploadDocument sends the file content under displayName and registers the
// resulting document in the session registry. Uploads are independent of
// any in-flight chat stream; no ordering between the two is assumed.
func (c *Coordinator) UploadDocument(ctx context.Context, displayName string, content io.Reader) (docs.Document, error) {
	task := async.Go(func() (*schema.UploadResponse, error) {
		return c.doUpload(ctx, displayName, content)
	})

	result, err := async.Await(task)
	if err != nil {
		logger.Error("Document upload failed", zap.String("document", displayName), zap.Error(err))
		return docs.Document{}, err
	}

	doc := docs.Document{
		InternalName: result.Filename,
		DisplayName:  displayName,
		FileType:     docs.ParseFileType(result.FileType, result.Filename),
		SizeBytes:    result.FileSize,
		SizeDisplay:  docs.FormatSize(result.FileSize),
		ChunkCount:   result.ChunksCreated,
		UploadTime:   time.Now(),
		SessionID:    c.session.ID,
	}
	c.session.Documents.Add(doc)

	logger.Info("Document uploaded",
		zap.String("document", doc.InternalName),
		zap.Int("chunks", doc.ChunkCount))
	return doc, nil
}

// RefreshDocuments fetches the server's document listing for this session
// and replaces the registry contents with it. Active names that disappeared
// server-side are pruned by the cascade.
func (c *Coordinator) RefreshDocuments(ctx context.Context) ([]docs.Document, error) {
	task := async.Go(func() (*schema.DocumentListResponse, error) {
		return c.doList(ctx)
	})

	listing, err := async.Await(task)
	if err != nil {
		logger.Error("Document listing failed", zap.Error(err))
		return nil, err
	}

	documents := linq.Map(listing.Documents, func(info schema.DocumentInfo) docs.Document {
		displayName := info.DisplayName
		if displayName == "" {
			displayName = info.Filename
		}
		return docs.Document{
			InternalName: info.Filename,
			DisplayName:  displayName,
			FileType:     docs.ParseFileType(info.FileType, info.Filename),
			SizeBytes:    info.FileSize,
			SizeDisplay:  docs.FormatSize(info.FileSize),
			ChunkCount:   info.ChunkCount,
			SessionID:    c.session.ID,
		}
	})

	c.session.Documents.ReplaceAll(documents)
	return documents, nil
}

// RemoveDocument deletes the document server-side and removes it from the
// registry, cascading out of the active set.
func (c *Coordinator) RemoveDocument(ctx context.Context, internalName string) error {
	task := async.Go(func() (*schema.RemoveResponse, error) {
		return c.doRemove(ctx, internalName)
	})

	if _, err := async.Await(task); err != nil {
		logger.Error("Document removal failed", zap.String("document", internalName), zap.Error(err))
		return err
	}

	c.session.Documents.Remove(internalName)
	return nil
}

func (c *Coordinator) doUpload(ctx context.Context, displayName string, content io.Reader) (*schema.UploadResponse, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", displayName)
	if err != nil {
		return nil, fmt.Errorf("error creating form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("error reading file content: %w", err)
	}
	if err := writer.WriteField("session_id", c.session.ID); err != nil {
		return nil, fmt.Errorf("error writing session field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("error finalizing upload body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+documentsPath, &body)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("upload failed with status %d: %s", resp.StatusCode, string(raw))
	}

	var result schema.UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("error unmarshaling upload response: %w", err)
	}
	if result.Status != schema.StatusSuccess {
		return nil, fmt.Errorf("upload rejected: %s", result.ErrorMessage)
	}
	return &result, nil
}

func (c *Coordinator) doList(ctx context.Context) (*schema.DocumentListResponse, error) {
	listURL := c.baseURL + documentsPath + "?session_id=" + url.QueryEscape(c.session.ID)
	req, err := http.NewRequestWithContext(ctx, "GET", listURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("listing failed with status %d: %s", resp.StatusCode, string(raw))
	}

	var result schema.DocumentListResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("error unmarshaling listing response: %w", err)
	}
	return &result, nil
}

func (c *Coordinator) doRemove(ctx context.Context, internalName string) (*schema.RemoveResponse, error) {
	removeURL := c.baseURL + documentsPath + "/" + url.PathEscape(internalName) +
		"?session_id=" + url.QueryEscape(c.session.ID)
	req, err := http.NewRequestWithContext(ctx, "DELETE", removeURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("removal failed with status %d: %s", resp.StatusCode, string(raw))
	}

	var result schema.RemoveResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("error unmarshaling removal response: %w", err)
	}
	if result.Status != schema.StatusSuccess {
		return nil, fmt.Errorf("removal rejected: %s", result.ErrorMessage)
	}
	return &result, nil
}
