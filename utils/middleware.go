package utils

import (
	"errors"
	"strconv"

	"github.com/Danieliragi/johnserviceMotel-sub002/models"
	"github.com/Danieliragi/johnserviceMotel-sub002/storage"

	"github.com/kataras/iris/v12"
)

func UserIDMiddleware(ctx iris.Context) {
	params := ctx.Params()
	id := params.Get("id")

	claims := accessTokenFromCtx(ctx)
	if claims == nil {
		ctx.StatusCode(iris.StatusUnauthorized)
		return
	}

	userID := strconv.FormatUint(uint64(claims.ID), 10)

	if userID != id {
		ctx.StatusCode(iris.StatusForbidden)
		return
	}
	ctx.Next()
}

// UserIDFromTokenMiddleware extracts user ID from JWT token and stores it in context.
// Use this for routes that don't have {id} parameter in URL.
func UserIDFromTokenMiddleware(ctx iris.Context) {
	claims := accessTokenFromCtx(ctx)
	if claims == nil {
		ctx.StatusCode(iris.StatusUnauthorized)
		return
	}
	ctx.Values().Set("userID", claims.ID)
	ctx.Next()
}

// lookupRole loads the stored role for the guard; a degraded store is a
// lookup failure, which the guard fails closed on.
func lookupRole(userID uint) (string, error) {
	var user models.User
	if !storage.Available() {
		return "", errors.New("reservation store not configured")
	}
	if err := storage.DB.Select("id, role").First(&user, userID).Error; err != nil {
		return "", err
	}
	return user.Role, nil
}

// AdminOnlyMiddleware gates the back office behind the admin guard.
func AdminOnlyMiddleware(ctx iris.Context) {
	claims := accessTokenFromCtx(ctx)

	decision := GuardAdmin(claims, lookupRole, DefaultFallback)
	if !decision.Authorized {
		ctx.StatusCode(iris.StatusForbidden)
		ctx.JSON(iris.Map{"error": "forbidden", "message": decision.Reason, "redirectTo": decision.RedirectTo})
		return
	}

	// Ensure userID is available to downstream handlers
	ctx.Values().Set("userID", claims.ID)
	ctx.Next()
}

// SuperAdminOnlyMiddleware ensures only super admins can access.
func SuperAdminOnlyMiddleware(ctx iris.Context) {
	claims := accessTokenFromCtx(ctx)

	decision := GuardSuperAdmin(claims, lookupRole, DefaultFallback)
	if !decision.Authorized {
		ctx.StatusCode(iris.StatusForbidden)
		ctx.JSON(iris.Map{"error": "forbidden", "message": decision.Reason, "redirectTo": decision.RedirectTo})
		return
	}
	ctx.Next()
}
