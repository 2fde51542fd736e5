// Package yaml_adapter provides the YAML implementation of config.Loader.
// It accepts the same settings as the HCL loader:
//
//	context: .
//	entries:
//	  - name: main
//	    import: ./src/index.js
//	module:
//	  rules:
//	    - test: '\.svg$'
//	      type: asset/resource
//	      use:
//	        - loader: svgo-loader
//	          options: {multipass: true}
//	  parser:
//	    dataUrlCondition:
//	      maxSize: 4096
//	resolve:
//	  extensions: [.ts, .js]
//	css:
//	  emitJsStub: true
//
// Unknown keys are rejected.
package yaml_adapter
