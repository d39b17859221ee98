package models

// AuthRequest はクライアントからの認証リクエストを表します。
// トークンが提供されている場合、それを使用して既存ユーザーを再利用します。
// トークンがない場合、新しい匿名ユーザーとトークンが生成されます。
type AuthRequest struct {
	Token    string `json:"token,omitempty"` // 既存のユーザー固有のJWTトークン
	NickName string `json:"nickname"`        // ニックネーム
}
