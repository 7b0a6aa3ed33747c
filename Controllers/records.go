package Controllers

import (
	"net/http"
	"sort"

	"github.com/rdclab2001/rdc-backend/Models"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func Dashboard(c *gin.Context) {
	appointments, err := Models.CountRows("appointments")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	leads, err := Models.CountRows("website_leads")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": gin.H{
		"appointments": appointments,
		"leads":        leads,
	}})
}

func FetchAppointments(c *gin.Context) {
	_, rows, err := Models.FetchRows("appointments")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": rows})
}

// FetchLeads lists website leads newest first.
func FetchLeads(c *gin.Context) {
	_, rows, err := Models.FetchRows("website_leads")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, _ := rows[i]["id"].(int64)
		b, _ := rows[j]["id"].(int64)
		return a > b
	})

	c.JSON(http.StatusOK, gin.H{"website_leads": rows})
}

func LeadCount(c *gin.Context) {
	count, err := Models.CountRows("website_leads")
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"count": 0})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func GetAllPatients(c *gin.Context) {
	patients, err := Models.FetchAllPatients()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patients)
}
