package http

import (
	"net/http"

	"github.com/dayflowhq/dayflow/pkg/hrsdk"
	"github.com/dayflowhq/dayflow/pkg/httpx"
	"github.com/dayflowhq/dayflow/pkg/jwtx"
)

// JWKSHandler exposes the JSON Web Key Set for public key discovery.
//
//	@Summary		Get JWKS
//	@Description	Returns the JSON Web Key Set used to verify session tokens.
//	@Tags			well-known
//	@Produce		json
//	@Success		200	{object}	hrsdk.JWKSResponse	"The JSON Web Key Set"
//	@Router			/.well-known/jwks.json [get].
func JWKSHandler(keys *jwtx.KeySet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, hrsdk.JWKSResponse(*keys))
	}
}
