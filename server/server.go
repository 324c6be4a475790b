// Package server exposes the pipelines and agents over HTTP.
package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"regexp"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yuin/goldmark"

	"github.com/nabobery/google-adk-experiments/core"
	"github.com/nabobery/google-adk-experiments/news"
	"github.com/nabobery/google-adk-experiments/refine"
	"github.com/nabobery/google-adk-experiments/session"
)

type Server struct {
	controller *refine.Controller
	agents     map[string]*core.Agent
	store      *session.Store
}

func New(controller *refine.Controller, store *session.Store, installed ...*core.Agent) *Server {
	agents := make(map[string]*core.Agent, len(installed))
	for _, a := range installed {
		agents[a.Name] = a
	}
	return &Server{
		controller: controller,
		agents:     agents,
		store:      store,
	}
}

// subredditRe accepts bare names and the r/ prefixed forms Normalize handles.
var subredditRe = regexp.MustCompile(`^/?(r/)?[A-Za-z0-9_]+$`)

func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("subreddit", func(fl validator.FieldLevel) bool {
			return subredditRe.MatchString(fl.Field().String())
		})
	}
}

// Router builds the gin engine with all routes attached.
func (s *Server) Router() *gin.Engine {
	registerValidations()
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	r.Use(cors.New(corsConfig))

	r.GET("/health", s.health)

	v1 := r.Group("/v1")
	v1.POST("/posts", s.createPost)
	v1.POST("/posts/preview", s.previewPost)
	v1.POST("/articles/scrape", s.scrapeArticle)
	v1.POST("/articles/analyze", s.analyzeArticle)
	v1.GET("/agents/:name", s.agentInfo)
	v1.POST("/agents/:name/messages", s.agentMessage)

	return r
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

type createPostRequest struct {
	Topic         string `json:"topic" binding:"required"`
	Subreddit     string `json:"subreddit" binding:"required,subreddit"`
	MaxIterations int    `json:"max_iterations" binding:"omitempty,gte=1,lte=10"`
}

func (s *Server) createPost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outcome, err := s.controller.Run(c.Request.Context(), req.Topic, req.Subreddit, req.MaxIterations)
	if err != nil {
		status := http.StatusBadGateway
		step := ""
		var stepErr *refine.StepError
		if errors.As(err, &stepErr) {
			step = string(stepErr.Step)
		}
		c.JSON(status, gin.H{"error": err.Error(), "step": step})
		return
	}

	c.JSON(http.StatusOK, outcome)
}

type previewRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}

func (s *Server) previewPost(c *gin.Context) {
	var req previewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	source := fmt.Sprintf("# %s\n\n%s", req.Title, req.Body)
	if err := goldmark.Convert([]byte(source), &buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"html": buf.String()})
}

type scrapeRequest struct {
	URL       string `json:"url" binding:"required,url"`
	MaxLength int    `json:"max_length" binding:"omitempty,gte=100"`
}

func (s *Server) scrapeArticle(c *gin.Context) {
	var req scrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := news.ScrapeArticle(c.Request.Context(), req.URL, req.MaxLength)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, article)
}

type analyzeRequest struct {
	Content      string `json:"content" binding:"required"`
	Title        string `json:"title"`
	AnalysisType string `json:"analysis_type" binding:"omitempty,oneof=all summary sentiment credibility bias"`
}

func (s *Server) analyzeArticle(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, news.Analyze(req.Content, req.Title, news.AnalysisKind(req.AnalysisType)))
}

func (s *Server) agentInfo(c *gin.Context) {
	agent, ok := s.agents[c.Param("name")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "agent not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"agent_name":  agent.Name,
		"description": agent.Description,
	})
}

type messageRequest struct {
	SessionKey string `json:"session_key" binding:"required"`
	Text       string `json:"text" binding:"required"`
}

func (s *Server) agentMessage(c *gin.Context) {
	agent, ok := s.agents[c.Param("name")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "agent not found"})
		return
	}

	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collection := s.store.Collection("agent:" + agent.Name)
	history := core.NewTaskHistory()
	if _, err := collection.GetOne(req.SessionKey, history); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	// A completed task resets the chat history for the next one.
	if history.Status == "completed" {
		history = core.NewTaskHistory()
	}

	ctx := session.WithKey(c.Request.Context(), req.SessionKey)
	out, err := agent.Run(ctx, history, core.LLMInput{
		SessionKey: req.SessionKey,
		Text:       req.Text,
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	if err := collection.UpsertOne(req.SessionKey, history); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response": out.Text,
		"status":   history.Status,
		"stats":    out.Stats,
	})
}
