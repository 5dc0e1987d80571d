package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fortune/internal/models"
	"fortune/internal/pagination"
	"fortune/internal/services"
)

// ClientHandler handles client management.
type ClientHandler struct {
	clientService services.ClientServicer
	auditService  services.AuditServicer
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientService services.ClientServicer, auditService services.AuditServicer) *ClientHandler {
	return &ClientHandler{clientService: clientService, auditService: auditService}
}

// CreateClientRequest represents the request payload for registering a client.
type CreateClientRequest struct {
	FullName  string `json:"fullName" binding:"required,min=1,max=200"`
	Email     string `json:"email" binding:"required,email"`
	ManagerID string `json:"managerId" binding:"max=100"`
}

// ListClients handles listing clients.
// @Summary     List clients
// @Tags        clients
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Client] "Paginated clients"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	result, err := h.clientService.ListClients(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateClient handles registering a client.
// @Summary     Create client
// @Tags        clients
// @Accept      json
// @Produce     json
// @Param       request body CreateClientRequest true "Client details"
// @Success     201 {object} models.Client "Client created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Email already registered"
// @Router      /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	client, err := h.clientService.CreateClient(req.FullName, req.Email, req.ManagerID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(client.ID, models.AuditCreateClient, "client", client.ID, c.ClientIP(),
		map[string]interface{}{"email": client.Email, "manager_id": client.ManagerID})

	c.JSON(http.StatusCreated, gin.H{"client": client})
}

// GetClient handles retrieving a client.
// @Summary     Get client by ID
// @Tags        clients
// @Produce     json
// @Param       id path string true "Client ID"
// @Success     200 {object} models.Client "Client details"
// @Failure     400 {object} ErrorResponse "Invalid client ID"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	client, err := h.clientService.GetClient(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"client": client})
}

// DeleteClient handles removing a client with their holdings and ledger.
// @Summary     Delete client
// @Description Permanently delete a client, their open holdings and transaction ledger
// @Tags        clients
// @Param       id path string true "Client ID"
// @Success     204 "Client deleted"
// @Failure     400 {object} ErrorResponse "Invalid client ID"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.clientService.DeleteClient(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(id, models.AuditDeleteClient, "client", id, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}
