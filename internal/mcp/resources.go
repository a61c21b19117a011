package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/spigell/career-assistant/internal/documents"
)

const uriScheme = "career://"

func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "sections",
		Name:        "sections",
		Description: "Portfolio sections the assistant answers from",
		MIMEType:    "application/json",
	}, s.handleSectionsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "sections/{name}",
		Name:        "section-content",
		Description: "Raw text of a portfolio section",
		MIMEType:    "text/plain",
	}, s.handleSectionResource)
}

func (s *Server) handleSectionsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type sectionInfo struct {
		Name    string `json:"name"`
		URI     string `json:"uri"`
		Path    string `json:"path"`
		Missing bool   `json:"missing"`
	}

	docs := s.assistant.Store().Documents()
	infos := make([]sectionInfo, len(docs))
	for i, doc := range docs {
		infos[i] = sectionInfo{
			Name:    string(doc.Section),
			URI:     sectionURI(doc.Section),
			Path:    doc.Path,
			Missing: doc.Missing,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling sections: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleSectionResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	doc, ok := s.lookupSection(extractSectionName(req.Params.URI))
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     doc.Raw,
		}},
	}, nil
}

// lookupSection matches section names case-insensitively.
func (s *Server) lookupSection(name string) (documents.Document, bool) {
	if name == "" {
		return documents.Document{}, false
	}

	for _, doc := range s.assistant.Store().Documents() {
		if strings.EqualFold(string(doc.Section), name) {
			return doc, true
		}
	}
	return documents.Document{}, false
}

func sectionURI(section documents.Section) string {
	return uriScheme + "sections/" + strings.ToLower(string(section))
}

// extractSectionName extracts the name from a URI like career://sections/{name}.
func extractSectionName(uri string) string {
	const prefix = uriScheme + "sections/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
