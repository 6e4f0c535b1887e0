package controllers

import (
	"errors"
	"net/http"

	"safir-backend/config"
	"safir-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type siteSettingsPayload struct {
	BannerTitle          string `json:"banner_title"`
	BannerSubtitle       string `json:"banner_subtitle"`
	HeroImage            string `json:"hero_image"`
	ThankYouMessage      string `json:"thank_you_message"`
	WhatsappConfirmation bool   `json:"whatsapp_confirmation"`
	ScarcityBadge        bool   `json:"scarcity_badge"`
}

func GetSiteSettings(c *gin.Context) {
	var settings models.SiteSetting
	if err := config.DB.First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"settings": models.SiteSetting{}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

func UpdateSiteSettings(c *gin.Context) {
	var payload siteSettingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var settings models.SiteSetting
	err := config.DB.First(&settings).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		settings = models.SiteSetting{}
	}

	settings.BannerTitle = payload.BannerTitle
	settings.BannerSubtitle = payload.BannerSubtitle
	settings.HeroImage = payload.HeroImage
	settings.ThankYouMessage = payload.ThankYouMessage
	settings.WhatsappConfirmation = payload.WhatsappConfirmation
	settings.ScarcityBadge = payload.ScarcityBadge

	if err := config.DB.Save(&settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}
