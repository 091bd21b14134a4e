package server

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/prism-dev/prism/internal/builder"
	"github.com/prism-dev/prism/internal/schema"
)

// registerBuilderRoutes wires the editor-facing surface: file tree,
// document CRUD, folder management, the navigation graph and the
// component catalog.
func (s *Server) registerBuilderRoutes(r *gin.RouterGroup) {
	r.GET("/files", s.fileTree)
	r.GET("/files/*path", s.readFile)
	r.PUT("/files/*path", s.writeFile)
	r.DELETE("/files/*path", s.deleteFile)
	r.POST("/folders/*path", s.createFolder)
	r.DELETE("/folders/*path", s.deleteFolder)
	r.GET("/graph/*path", s.folderGraph)
	r.GET("/component-specs", s.componentSpecs)
}

// wildcardPath strips the leading slash gin keeps on *path params.
func wildcardPath(c *gin.Context) string {
	return strings.TrimPrefix(c.Param("path"), "/")
}

func (s *Server) fileTree(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tree": s.builder.Tree()})
}

func (s *Server) readFile(c *gin.Context) {
	path := wildcardPath(c)
	content, err := s.builder.ReadFile(path)
	if err != nil {
		if errors.Is(err, builder.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"error": "File not found", "path": path})
			return
		}
		c.JSON(http.StatusOK, gin.H{"error": "Failed to read file", "details": err.Error(), "path": path})
		return
	}
	c.JSON(http.StatusOK, gin.H{"path": path, "content": content})
}

func (s *Server) writeFile(c *gin.Context) {
	path := wildcardPath(c)
	var content any
	if err := c.ShouldBindJSON(&content); err != nil {
		c.JSON(http.StatusOK, gin.H{"error": "Invalid JSON body", "details": err.Error(), "path": path})
		return
	}
	if err := s.builder.WriteFile(path, content); err != nil {
		c.JSON(http.StatusOK, gin.H{"error": "Failed to write file", "details": err.Error(), "path": path})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "path": path})
}

func (s *Server) deleteFile(c *gin.Context) {
	path := wildcardPath(c)
	if err := s.builder.DeleteFile(path); err != nil {
		if errors.Is(err, builder.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"error": "File not found", "path": path})
			return
		}
		c.JSON(http.StatusOK, gin.H{"error": "Failed to delete file", "details": err.Error(), "path": path})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "path": path})
}

func (s *Server) createFolder(c *gin.Context) {
	path := wildcardPath(c)
	if err := s.builder.CreateFolder(path); err != nil {
		if errors.Is(err, builder.ErrExists) {
			c.JSON(http.StatusOK, gin.H{"error": "Folder already exists", "path": path})
			return
		}
		c.JSON(http.StatusOK, gin.H{"error": "Failed to create folder", "details": err.Error(), "path": path})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "path": path})
}

func (s *Server) deleteFolder(c *gin.Context) {
	path := wildcardPath(c)
	if err := s.builder.DeleteFolder(path); err != nil {
		if errors.Is(err, builder.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"error": "Folder not found", "path": path})
			return
		}
		c.JSON(http.StatusOK, gin.H{"error": "Failed to delete folder", "details": err.Error(), "path": path})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "path": path})
}

// folderGraph returns the navigation graph of one flow folder. Only
// nodes and edges go over the wire; unresolved references stay a CLI
// diagnostic.
func (s *Server) folderGraph(c *gin.Context) {
	path := wildcardPath(c)
	cleaned := filepath.Clean(filepath.FromSlash(path))
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) || filepath.IsAbs(cleaned) {
		c.JSON(http.StatusOK, gin.H{"error": "Folder not found", "path": path})
		return
	}
	folder := filepath.Join(s.store.AssetsDir(), cleaned)

	g, err := s.graphs.Build(folder, path)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"error": "Folder not found", "path": path})
		return
	}
	c.JSON(http.StatusOK, gin.H{"nodes": g.Nodes, "edges": g.Edges})
}

func (s *Server) componentSpecs(c *gin.Context) {
	c.JSON(http.StatusOK, schema.Default())
}
