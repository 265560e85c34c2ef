package handlers

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the API onto the router
func RegisterRoutes(router *gin.Engine, attestations *AttestationHandlers, system *SystemHandlers) {
	router.HandleMethodNotAllowed = true
	router.NoRoute(NotFound)
	router.NoMethod(MethodNotAllowed)

	router.GET("/", system.GetAPIInfo)
	// Legacy clients post the form to the root
	router.POST("/", attestations.CreateAttestation)

	v1 := router.Group("/v1")
	{
		v1.GET("/health", system.HealthCheck)
		v1.GET("/reasons", attestations.ListReasons)
		v1.POST("/attestation", attestations.CreateAttestation)
	}
}
