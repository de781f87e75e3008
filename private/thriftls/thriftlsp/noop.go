package thriftlsp

import (
	"context"
	"errors"

	"go.lsp.dev/protocol"
)

// noopServer implements every method of protocol.Server, each returning a
// "not implemented" error except the Initialized and SetTrace
// notifications, which are accepted as no-ops. server embeds it and overrides only the methods
// this language server actually supports.
type noopServer struct{}

func (noopServer) Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	return nil, errors.New("not implemented: Initialize")
}
func (noopServer) Initialized(ctx context.Context, params *protocol.InitializedParams) error {
	return nil
}
func (noopServer) Shutdown(ctx context.Context) error {
	return errors.New("not implemented: Shutdown")
}
func (noopServer) Exit(ctx context.Context) error {
	return errors.New("not implemented: Exit")
}
func (noopServer) WorkDoneProgressCancel(ctx context.Context, params *protocol.WorkDoneProgressCancelParams) error {
	return errors.New("not implemented: WorkDoneProgressCancel")
}
func (noopServer) LogTrace(ctx context.Context, params *protocol.LogTraceParams) error {
	return errors.New("not implemented: LogTrace")
}
func (noopServer) SetTrace(ctx context.Context, params *protocol.SetTraceParams) error {
	return nil
}
func (noopServer) CodeAction(ctx context.Context, params *protocol.CodeActionParams) ([]protocol.CodeAction, error) {
	return nil, errors.New("not implemented: CodeAction")
}
func (noopServer) CodeLens(ctx context.Context, params *protocol.CodeLensParams) ([]protocol.CodeLens, error) {
	return nil, errors.New("not implemented: CodeLens")
}
func (noopServer) CodeLensResolve(ctx context.Context, params *protocol.CodeLens) (*protocol.CodeLens, error) {
	return nil, errors.New("not implemented: CodeLensResolve")
}
func (noopServer) ColorPresentation(ctx context.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	return nil, errors.New("not implemented: ColorPresentation")
}
func (noopServer) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	return nil, errors.New("not implemented: Completion")
}
func (noopServer) CompletionResolve(ctx context.Context, params *protocol.CompletionItem) (*protocol.CompletionItem, error) {
	return nil, errors.New("not implemented: CompletionResolve")
}
func (noopServer) Declaration(ctx context.Context, params *protocol.DeclarationParams) ([]protocol.Location, error) {
	return nil, errors.New("not implemented: Declaration")
}
func (noopServer) Definition(ctx context.Context, params *protocol.DefinitionParams) ([]protocol.Location, error) {
	return nil, errors.New("not implemented: Definition")
}
func (noopServer) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	return errors.New("not implemented: DidChange")
}
func (noopServer) DidChangeConfiguration(ctx context.Context, params *protocol.DidChangeConfigurationParams) error {
	return errors.New("not implemented: DidChangeConfiguration")
}
func (noopServer) DidChangeWatchedFiles(ctx context.Context, params *protocol.DidChangeWatchedFilesParams) error {
	return errors.New("not implemented: DidChangeWatchedFiles")
}
func (noopServer) DidChangeWorkspaceFolders(ctx context.Context, params *protocol.DidChangeWorkspaceFoldersParams) error {
	return errors.New("not implemented: DidChangeWorkspaceFolders")
}
func (noopServer) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	return errors.New("not implemented: DidClose")
}
func (noopServer) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	return errors.New("not implemented: DidOpen")
}
func (noopServer) DidSave(ctx context.Context, params *protocol.DidSaveTextDocumentParams) error {
	return errors.New("not implemented: DidSave")
}
func (noopServer) DocumentColor(ctx context.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	return nil, errors.New("not implemented: DocumentColor")
}
func (noopServer) DocumentHighlight(ctx context.Context, params *protocol.DocumentHighlightParams) ([]protocol.DocumentHighlight, error) {
	return nil, errors.New("not implemented: DocumentHighlight")
}
func (noopServer) DocumentLink(ctx context.Context, params *protocol.DocumentLinkParams) ([]protocol.DocumentLink, error) {
	return nil, errors.New("not implemented: DocumentLink")
}
func (noopServer) DocumentLinkResolve(ctx context.Context, params *protocol.DocumentLink) (*protocol.DocumentLink, error) {
	return nil, errors.New("not implemented: DocumentLinkResolve")
}
func (noopServer) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	return nil, errors.New("not implemented: DocumentSymbol")
}
func (noopServer) ExecuteCommand(ctx context.Context, params *protocol.ExecuteCommandParams) (interface{}, error) {
	return nil, errors.New("not implemented: ExecuteCommand")
}
func (noopServer) FoldingRanges(ctx context.Context, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	return nil, errors.New("not implemented: FoldingRanges")
}
func (noopServer) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	return nil, errors.New("not implemented: Formatting")
}
func (noopServer) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	return nil, errors.New("not implemented: Hover")
}
func (noopServer) Implementation(ctx context.Context, params *protocol.ImplementationParams) ([]protocol.Location, error) {
	return nil, errors.New("not implemented: Implementation")
}
func (noopServer) OnTypeFormatting(ctx context.Context, params *protocol.DocumentOnTypeFormattingParams) ([]protocol.TextEdit, error) {
	return nil, errors.New("not implemented: OnTypeFormatting")
}
func (noopServer) PrepareRename(ctx context.Context, params *protocol.PrepareRenameParams) (*protocol.Range, error) {
	return nil, errors.New("not implemented: PrepareRename")
}
func (noopServer) RangeFormatting(ctx context.Context, params *protocol.DocumentRangeFormattingParams) ([]protocol.TextEdit, error) {
	return nil, errors.New("not implemented: RangeFormatting")
}
func (noopServer) References(ctx context.Context, params *protocol.ReferenceParams) ([]protocol.Location, error) {
	return nil, errors.New("not implemented: References")
}
func (noopServer) Rename(ctx context.Context, params *protocol.RenameParams) (*protocol.WorkspaceEdit, error) {
	return nil, errors.New("not implemented: Rename")
}
func (noopServer) SignatureHelp(ctx context.Context, params *protocol.SignatureHelpParams) (*protocol.SignatureHelp, error) {
	return nil, errors.New("not implemented: SignatureHelp")
}
func (noopServer) Symbols(ctx context.Context, params *protocol.WorkspaceSymbolParams) ([]protocol.SymbolInformation, error) {
	return nil, errors.New("not implemented: Symbols")
}
func (noopServer) TypeDefinition(ctx context.Context, params *protocol.TypeDefinitionParams) ([]protocol.Location, error) {
	return nil, errors.New("not implemented: TypeDefinition")
}
func (noopServer) WillSave(ctx context.Context, params *protocol.WillSaveTextDocumentParams) error {
	return errors.New("not implemented: WillSave")
}
func (noopServer) WillSaveWaitUntil(ctx context.Context, params *protocol.WillSaveTextDocumentParams) ([]protocol.TextEdit, error) {
	return nil, errors.New("not implemented: WillSaveWaitUntil")
}
func (noopServer) ShowDocument(ctx context.Context, params *protocol.ShowDocumentParams) (*protocol.ShowDocumentResult, error) {
	return nil, errors.New("not implemented: ShowDocument")
}
func (noopServer) WillCreateFiles(ctx context.Context, params *protocol.CreateFilesParams) (*protocol.WorkspaceEdit, error) {
	return nil, errors.New("not implemented: WillCreateFiles")
}
func (noopServer) DidCreateFiles(ctx context.Context, params *protocol.CreateFilesParams) error {
	return errors.New("not implemented: DidCreateFiles")
}
func (noopServer) WillRenameFiles(ctx context.Context, params *protocol.RenameFilesParams) (*protocol.WorkspaceEdit, error) {
	return nil, errors.New("not implemented: WillRenameFiles")
}
func (noopServer) DidRenameFiles(ctx context.Context, params *protocol.RenameFilesParams) error {
	return errors.New("not implemented: DidRenameFiles")
}
func (noopServer) WillDeleteFiles(ctx context.Context, params *protocol.DeleteFilesParams) (*protocol.WorkspaceEdit, error) {
	return nil, errors.New("not implemented: WillDeleteFiles")
}
func (noopServer) DidDeleteFiles(ctx context.Context, params *protocol.DeleteFilesParams) error {
	return errors.New("not implemented: DidDeleteFiles")
}
func (noopServer) CodeLensRefresh(ctx context.Context) error {
	return errors.New("not implemented: CodeLensRefresh")
}
func (noopServer) PrepareCallHierarchy(ctx context.Context, params *protocol.CallHierarchyPrepareParams) ([]protocol.CallHierarchyItem, error) {
	return nil, errors.New("not implemented: PrepareCallHierarchy")
}
func (noopServer) IncomingCalls(ctx context.Context, params *protocol.CallHierarchyIncomingCallsParams) ([]protocol.CallHierarchyIncomingCall, error) {
	return nil, errors.New("not implemented: IncomingCalls")
}
func (noopServer) OutgoingCalls(ctx context.Context, params *protocol.CallHierarchyOutgoingCallsParams) ([]protocol.CallHierarchyOutgoingCall, error) {
	return nil, errors.New("not implemented: OutgoingCalls")
}
func (noopServer) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	return nil, errors.New("not implemented: SemanticTokensFull")
}
func (noopServer) SemanticTokensFullDelta(ctx context.Context, params *protocol.SemanticTokensDeltaParams) (interface{}, error) {
	return nil, errors.New("not implemented: SemanticTokensFullDelta")
}
func (noopServer) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	return nil, errors.New("not implemented: SemanticTokensRange")
}
func (noopServer) SemanticTokensRefresh(ctx context.Context) error {
	return errors.New("not implemented: SemanticTokensRefresh")
}
func (noopServer) LinkedEditingRange(ctx context.Context, params *protocol.LinkedEditingRangeParams) (*protocol.LinkedEditingRanges, error) {
	return nil, errors.New("not implemented: LinkedEditingRange")
}
func (noopServer) Moniker(ctx context.Context, params *protocol.MonikerParams) ([]protocol.Moniker, error) {
	return nil, errors.New("not implemented: Moniker")
}
func (noopServer) Request(ctx context.Context, method string, params interface{}) (interface{}, error) {
	return nil, errors.New("not implemented: Request")
}
