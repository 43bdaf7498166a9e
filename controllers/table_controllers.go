package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/reservation-app/services"
	"github.com/yeremiapane/reservation-app/utils"
)

var (
	errMissingSeats  = errors.New("seats is required")
	errTableNotFound = errors.New("table not found")
)

type TableController struct {
	Tables  *services.TableService
	Listing *services.ListingService
}

func NewTableController(tables *services.TableService, listing *services.ListingService) *TableController {
	return &TableController{Tables: tables, Listing: listing}
}

// GetAllTables -> the nested tables-with-reservations view. The overdue
// sweep runs as part of this read.
func (tc *TableController) GetAllTables(c *gin.Context) {
	tables, err := tc.Listing.TablesWithReservations()
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", gin.H{"tables": tables})
}

// CreateTable -> add a table to the inventory
func (tc *TableController) CreateTable(c *gin.Context) {
	var req struct {
		Name  string `json:"name"`
		Floor string `json:"floor"`
		Seats *int   `json:"seats"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Seats == nil {
		utils.RespondError(c, http.StatusBadRequest, errMissingSeats)
		return
	}

	table, err := tc.Tables.Add(req.Name, req.Floor, *req.Seats)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

// UpdateTable -> change name and/or seats of an existing table
func (tc *TableController) UpdateTable(c *gin.Context) {
	tableID := c.Param("table_id")
	var req struct {
		Name  *string `json:"name"`
		Seats *int    `json:"seats"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Tables.Update(tableID, req.Name, req.Seats)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

// DeleteTable -> remove a table and every reservation bound to it
func (tc *TableController) DeleteTable(c *gin.Context) {
	tableID := c.Param("table_id")
	if err := tc.Tables.Delete(tableID); err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{"id": tableID})
}

// GetTableByID -> detail of one table
func (tc *TableController) GetTableByID(c *gin.Context) {
	table, err := tc.Tables.Get(c.Param("table_id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if table == nil {
		utils.RespondError(c, http.StatusNotFound, errTableNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}
