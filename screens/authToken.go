package screens

import (
	"net/http"

	"saboserver/auth"
	"saboserver/middlewares"
	"saboserver/models"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gin-gonic/gin"

	jwt "github.com/dgrijalva/jwt-go"
)

// TokenHandler は匿名ユーザーの認証トークンを発行するハンドラー。
// 有効なトークンが提供された場合はそのユーザーIDを再利用する
func TokenHandler(c *gin.Context, db *gorm.DB, logger *zap.Logger) {
	var request models.AuthRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		logger.Error("Auth request bind error", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	nickName := request.NickName
	if nickName == "" {
		nickName = "guest"
	}

	var existingUserID uint
	if request.Token != "" {
		// トークンが提供された場合、そのトークンをパースして検証
		claims := &models.MyClaims{}
		token, err := jwt.ParseWithClaims(request.Token, claims, func(token *jwt.Token) (interface{}, error) {
			return auth.JwtKey, nil
		})
		if err == nil && token.Valid {
			existingUserID = claims.UserID
			if request.NickName == "" {
				nickName = claims.NickName
			}
		}
		// 無効・期限切れのトークンは黙って破棄し、新規ユーザーとして扱う
	}

	tokenString, userID, err := middlewares.GenerateToken(db, logger, nickName, existingUserID)
	if err != nil {
		logger.Error("Failed to generate token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"token":    tokenString,
		"userID":   userID,
		"nickName": nickName,
	})
}
