// Package server issues equations over HTTP and grades answers to them.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wildfunctions/backsolve/pkg/engine"
	"github.com/wildfunctions/backsolve/pkg/equation"
)

// DefaultCapacity bounds how many issued equations are kept for grading.
const DefaultCapacity = 1024

// Server wraps a Gin router around an equation generator.
type Server struct {
	Router *gin.Engine
	Server *http.Server

	mu       sync.Mutex
	gen      *equation.Generator
	issued   map[string]equation.Value
	order    []string
	nextID   uint64
	capacity int
}

// New wires routes and returns an instance. The generator is only ever used
// under the server's lock.
func New(gen *equation.Generator, capacity int) *Server {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	s := &Server{
		Router:   gin.Default(),
		gen:      gen,
		issued:   make(map[string]equation.Value),
		capacity: capacity,
	}
	s.setupRoutes()
	return s
}

// Run starts the HTTP server (non-blocking).
func (s *Server) Run(addr string) {
	s.Server = &http.Server{
		Addr:              addr,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("equation API listening on %s", addr)
		if err := s.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.Server != nil {
		return s.Server.Shutdown(ctx)
	}
	return nil
}

// ----------------------------------------------------------------------
// Routes
// ----------------------------------------------------------------------

func (s *Server) setupRoutes() {
	s.Router.GET("/healthz", s.healthz)
	s.Router.POST("/equations", s.createEquation)
	s.Router.POST("/equations/:id/answer", s.answerEquation)
}

type createRequest struct {
	Difficulty string `json:"difficulty"`
}

type equationResponse struct {
	ID         string              `json:"id"`
	Text       string              `json:"text"`
	LaTeX      string              `json:"latex"`
	Difficulty equation.Difficulty `json:"difficulty"`
}

type answerRequest struct {
	Answer string `json:"answer"`
}

type answerResponse struct {
	Correct bool   `json:"correct"`
	Answer  string `json:"answer"`
}

// GET /healthz
func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// POST /equations
func (s *Server) createEquation(c *gin.Context) {
	var req createRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid JSON: %v", err)})
			return
		}
	}
	d := equation.Medium
	if req.Difficulty != "" {
		parsed, err := equation.ParseDifficulty(req.Difficulty)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		d = parsed
	}

	id, v := s.issue(d)
	c.JSON(http.StatusCreated, equationResponse{
		ID:         id,
		Text:       v.String(),
		LaTeX:      v.LaTeX(),
		Difficulty: v.Difficulty(),
	})
}

// POST /equations/:id/answer
func (s *Server) answerEquation(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid JSON: %v", err)})
		return
	}
	v, ok := s.lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown equation"})
		return
	}
	c.JSON(http.StatusOK, answerResponse{
		Correct: engine.Grade(v, req.Answer),
		Answer:  engine.FormatAnswer(v.CalcValue()),
	})
}

// issue generates an equation and remembers it, evicting the oldest once
// capacity is reached.
func (s *Server) issue(d equation.Difficulty) (string, equation.Value) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.gen.New(d)
	s.nextID++
	id := fmt.Sprintf("eq-%d", s.nextID)
	s.issued[id] = v
	s.order = append(s.order, id)
	if len(s.order) > s.capacity {
		delete(s.issued, s.order[0])
		s.order = s.order[1:]
	}
	return id, v
}

func (s *Server) lookup(id string) (equation.Value, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.issued[id]
	return v, ok
}
